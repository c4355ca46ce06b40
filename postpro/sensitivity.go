package postpro

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

const nPrtb = 3 // perturbation dimensions: soil moisture, temperature, rainfall

// Sensitivity perturbs the daily record over a Latin hypercube sample space
// and reruns the solver, one output row per realization. Returns the batch
// file prefix.
func Sensitivity(recs []irrigate.LandParameters, cap float64, n int, outdir string) string {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, nPrtb, false)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() {                                                  // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < nPrtb; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	csvw := mmio.NewCSVwriter(outdirbatch + ".sensitivity.csv")
	defer csvw.Close()
	if err := csvw.WriteHead("realization,used,savings,efficiency"); err != nil {
		log.Fatalf(" postpro.Sensitivity %v", err)
	}

	s := irrigate.New(cap, len(recs))
	for k := 0; k < n; k++ {
		ut := make([]float64, nPrtb)
		for j := 0; j < nPrtb; j++ {
			ut[j] = sp.U[j][k]
		}
		pln, err := s.SolveConcurrent(Perturb(recs, ut))
		if err != nil {
			log.Fatalf(" postpro.Sensitivity %v", err)
		}
		csvw.WriteLine(k, pln.TotalWaterUsed, pln.WaterSavings, pln.TotalEfficiency)
		fmt.Print(".")
	}
	fmt.Println()
	return outdirbatch
}

// Perturb shifts a record by mapped unit-interval factors: ±.1 soil
// moisture, ±3° temperature, rainfall scaled [0,2]. The source is copied.
func Perturb(recs []irrigate.LandParameters, u []float64) []irrigate.LandParameters {
	dsm := mmaths.LinearTransform(-.1, .1, u[0])
	dtc := mmaths.LinearTransform(-3., 3., u[1])
	frf := mmaths.LinearTransform(0., 2., u[2])
	out := make([]irrigate.LandParameters, len(recs))
	for j, r := range recs {
		r.SoilMoisture = math.Min(1., math.Max(0., r.SoilMoisture+dsm))
		r.Temperature += dtc
		r.RainfallForecast *= frf
		out[j] = r
	}
	return out
}
