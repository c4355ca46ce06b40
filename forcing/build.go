package forcing

import (
	"fmt"
	"math"
	"time"

	"github.com/maseology/goHydro/gmet"
)

const intvl = 86400.

// FromNC builds a daily record from a NetCDF scrape. Gridded sources carry
// daily mean air temperature only, so Tn and Tx are both set to the mean.
func FromNC(ncfp string) (*Forcing, error) {
	vars := []string{
		"air_temperature",
		"relative_humidity",
		"rainfall_amount",
	}
	g, err := gmet.LoadNC(ncfp, vars)
	if err != nil {
		return nil, fmt.Errorf(" forcing.FromNC %v", err)
	}
	return build(g), nil
}

func build(g *gmet.GMET) *Forcing {
	// collect sequential dates
	ts, xt, nts := func() ([]time.Time, []int, int) {
		d := make(map[int64]int, g.Nts)
		for j, t := range g.Ts {
			d[t.Unix()] = j
		}

		dt, cdt := g.Ts[0], 0
		for {
			if _, ok := d[dt.Unix()]; !ok {
				fmt.Printf("   > missing date %v\n", dt)
				d[dt.Unix()] = -1
				cdt++
			}
			dt = dt.Add(time.Second * time.Duration(intvl))
			if dt.After(g.Ts[g.Nts-1]) {
				break
			}
		}
		if cdt > 0 {
			fmt.Printf("     Total missing dates = %d\n", cdt)
		}

		o, x := make([]time.Time, 0, len(d)), make([]int, 0, len(d))
		dt = g.Ts[0]
		for {
			if xx, ok := d[dt.Unix()]; ok {
				x = append(x, xx)
			} else {
				panic("forcing sequential dates error")
			}
			o = append(o, dt)
			dt = dt.Add(time.Second * time.Duration(intvl))
			if dt.After(g.Ts[g.Nts-1]) {
				break
			}
		}
		fmt.Printf("  Dates available: %v to %v in %d steps\n", o[0], o[len(o)-1], len(o))
		return o, x, len(o)
	}()

	// collect data, first station only
	ta := g.GetAllData("air_temperature")[0]
	rho := g.GetAllData("relative_humidity")[0]
	rfo := g.GetAllData("rainfall_amount")[0]

	min0 := func(x float64, s string, t time.Time) float64 {
		if math.IsNaN(x) {
			fmt.Printf("   > %s Nan: %v -- set to zero\n", s, t)
			return 0.
		}
		if x < 0. {
			return 0.
		}
		return x
	}

	tn, tx := make([]float64, nts), make([]float64, nts)
	rh, rf := make([]float64, nts), make([]float64, nts)
	tl, hl := 10., 50. // infill values, carried forward
	for j, t := range ts {
		jj := xt[j]
		if jj >= 0 && !math.IsNaN(ta[jj]) {
			tl = ta[jj]
		}
		tn[j], tx[j] = tl, tl
		if jj >= 0 && !math.IsNaN(rho[jj]) && rho[jj] >= 0. {
			hl = rho[jj]
		}
		rh[j] = hl
		if jj >= 0 {
			rf[j] = min0(rfo[jj], "rf", t)
		}
	}

	return &Forcing{T: ts, Tn: tn, Tx: tx, Rh: rh, Rf: rf}
}
