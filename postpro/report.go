package postpro

import (
	"log"
	"time"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/maseology/mmio"
)

// Report prints the schedule and writes the standard post-run outputs: the
// per-period schedule CSV, a dated requirement-allocation series, and a
// requirement vs allocation scatter.
func Report(pln *irrigate.Plan, dm *irrigate.DemandModel, ts []time.Time, outdirprfx string) {
	pln.Print()

	if err := pln.WriteCSV(outdirprfx+"schedule.csv", dm); err != nil {
		log.Fatalf(" postpro.Report %v", err)
	}

	if len(ts) == len(pln.Schedule) {
		alo, req := make([]float64, len(ts)), make([]float64, len(ts))
		for j, a := range pln.Schedule {
			alo[j] = a.Water
			req[j] = dm.Requirement(&a.Params)
		}
		mmio.WriteCsvDateFloats(outdirprfx+"allocation.csv", "date,requirement,allocated", ts, req, alo)
		mmio.ObsSim(outdirprfx+"allocation.png", req, alo)
	}
}
