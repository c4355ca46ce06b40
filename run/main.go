package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/Hari-Vignesh214/smart-irrigation-system/postpro"
	"github.com/maseology/mmio"
)

func main() {

	const (
		recfp = "dat/season.csv" // daily land parameter records
		sply  = 10.              // seasonal supply, allocation units
		outp  = "out/"
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load data
	recs, err := irrigate.ReadLandParametersCSV(recfp)
	if err != nil {
		log.Fatalln(err)
	}
	tt.Print(fmt.Sprintf("%d records loaded\n", len(recs)))

	// build schedule
	s := irrigate.New(sply, len(recs))
	pln, err := s.SolveConcurrent(recs)
	if err != nil {
		log.Fatalln(err)
	}

	// report
	mmio.MakeDir(outp)
	ts := make([]time.Time, len(recs))
	t0 := time.Now()
	for j := range ts {
		ts[j] = t0.AddDate(0, 0, j)
	}
	postpro.Report(pln, &s.DM, ts, outp)
	if err := pln.SaveGob(outp + "plan.gob"); err != nil {
		log.Fatalln(err)
	}

	// // supply sweep
	// postpro.CapacitySweep(recs, 0., 2.*sply, sply/20., outp+"sweep.csv")

	// // forecast uncertainty
	// postpro.Sensitivity(recs, sply, 100, outp)
}
