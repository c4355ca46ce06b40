package forcing

import (
	"log"
	"math"

	"github.com/maseology/goHydro/pet"
	"github.com/maseology/goHydro/solirrad"
)

const (
	a = .27
	b = .52
)

func etRadToGlobal(Ke, nN float64) float64 {
	// the Prescott-type equation (Novák, 2012, pg.232)
	return Ke * (a + b*nN)
}

// PotentialET computes daily Makkink potential evapotranspiration [m/d] for
// a horizontal surface at the given latitude.
func (frc *Forcing) PotentialET(latDeg float64) []float64 {
	si := solirrad.New(latDeg, 0., 0.)
	ep := make([]float64, len(frc.T))
	for j, dt := range frc.T {
		tm, doy := (frc.Tx[j]+frc.Tn[j])/2., dt.YearDay()
		nN := 1. // ratio of sunshine hours (n) to total possible ( N = si.DaylightHours(doy) )
		if frc.Rf[j] > .001 {
			nN = 0.
		}
		Kg := etRadToGlobal(si.PSIdaily(doy), nN)
		ep[j] = pet.Makkink(Kg, tm, 101300.)
		if math.IsNaN(ep[j]) {
			log.Fatalf("%v NaN computed: ep=%f  tm=%f", dt, ep[j], tm)
		}
	}
	return ep
}
