package calib

import (
	"math"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/maseology/mmaths"
)

const nPar = 2

// Par2 maps unit-interval samples to demand table parameters.
func Par2(u []float64) (breq, fstg float64) {
	breq = mmaths.LinearTransform(.5, 5., u[0])     // base crop water requirement, allocation units
	fstg = mmaths.LogLinearTransform(.25, 4., u[1]) // growth curve sharpening exponent [-]
	return
}

// DemandModelU builds single-crop demand tables from fitted parameters. The
// stock stage curve is raised to fstg, keeping mid-season fixed at unity.
func DemandModelU(crop string, breq, fstg float64) *irrigate.DemandModel {
	dm := irrigate.DefaultDemandModel()
	dm.CropReq = map[string]float64{crop: breq}
	dm.DefaultReq = breq
	gm := make([]float64, len(dm.GrowthMult))
	for i, g := range dm.GrowthMult {
		gm[i] = math.Pow(g, fstg)
	}
	dm.GrowthMult = gm
	return &dm
}
