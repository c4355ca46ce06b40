package postpro

import (
	"fmt"
	"log"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
)

// CapacitySweep reruns the solver over a range of seasonal supplies,
// writing one row per capacity, bounds inclusive.
func CapacitySweep(recs []irrigate.LandParameters, c0, c1, dc float64, fp string) {
	if dc <= 0. || c1 < c0 {
		log.Fatalf(" postpro.CapacitySweep: bad range [%f,%f] by %f", c0, c1, dc)
	}
	n := int((c1-c0)/dc+1e-8) + 1

	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("capacity,used,savings,efficiency"); err != nil {
		log.Fatalf(" postpro.CapacitySweep %v", err)
	}

	uiprogress.Start()
	capstep := make(chan string)
	bar := uiprogress.AddBar(n).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-capstep
	})

	s := irrigate.New(c0, len(recs))
	for k := 0; k < n; k++ {
		cap := c0 + float64(k)*dc
		capstep <- fmt.Sprintf("cap %.2f", cap)
		s.Cap = cap
		pln, err := s.SolveConcurrent(recs)
		if err != nil {
			log.Fatalf(" postpro.CapacitySweep %v", err)
		}
		csvw.WriteLine(cap, pln.TotalWaterUsed, pln.WaterSavings, pln.TotalEfficiency)
		bar.Incr()
	}
	close(capstep)
	uiprogress.Stop()
}
