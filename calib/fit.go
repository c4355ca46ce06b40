package calib

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// Fit calibrates the demand tables against a logged application record by
// replaying the allocation solver. Returns the fitted model and its NSE.
// Observations must align with the record sequence, one per period.
func Fit(recs []irrigate.LandParameters, obs []float64, cap float64) (*irrigate.DemandModel, float64) {
	if len(obs) != len(recs) {
		log.Fatalf(" calib.Fit error: %d observations for %d records", len(obs), len(recs))
	}
	crop := recs[0].CropType

	s := irrigate.New(cap, len(recs))
	sim := func(u []float64) []float64 {
		breq, fstg := Par2(u)
		s.DM = *DemandModelU(crop, breq, fstg)
		pln, err := s.Solve(recs)
		if err != nil {
			return nil
		}
		out := make([]float64, len(pln.Schedule))
		for j, a := range pln.Schedule {
			out[j] = a.Water
		}
		return out
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		v := sim(u)
		if v == nil {
			return math.MaxFloat64
		}
		return 1. - objfunc.NSE(obs, v)
	}

	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(16, nPar, rng, gen, true)

	breq, fstg := Par2(uFinal)
	fmt.Printf("\nfinal parameters:\n\tbaseReq:\t%v\n\tstageExp:\t%v\n", breq, fstg)

	vFinal := sim(uFinal)
	kge := objfunc.KGE(obs, vFinal)
	nse := objfunc.NSE(obs, vFinal)
	rmse := objfunc.RMSE(obs, vFinal)
	bias := objfunc.Bias(obs, vFinal)
	fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n", kge, nse, rmse, bias)
	mmio.ObsSim("fit.png", obs, vFinal)

	return DemandModelU(crop, breq, fstg), nse
}
