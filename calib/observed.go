package calib

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maseology/mmio"
)

// ReadObserved loads a logged irrigation application record from
// "date,applied" lines, dates formatted yyyy-mm-dd, header optional.
func ReadObserved(fp string) ([]time.Time, []float64, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, nil, fmt.Errorf(" calib.ReadObserved %v", err)
	}
	ts, vs := []time.Time{}, []float64{}
	for i, ln := range lns {
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		a := strings.Split(ln, ",")
		if len(a) != 2 {
			return nil, nil, fmt.Errorf(" calib.ReadObserved %s line %d: need 2 fields, found %d", fp, i+1, len(a))
		}
		t, err := time.Parse("2006-01-02", strings.TrimSpace(a[0]))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, nil, fmt.Errorf(" calib.ReadObserved %s line %d: %v", fp, i+1, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(a[1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf(" calib.ReadObserved %s line %d: %v", fp, i+1, err)
		}
		ts, vs = append(ts, t), append(vs, v)
	}
	if len(ts) == 0 {
		return nil, nil, fmt.Errorf(" calib.ReadObserved %s: no records", fp)
	}
	return ts, vs, nil
}
