package forcing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maseology/mmio"
)

// GetForcings loads a daily climate record, dispatching on file type.
func GetForcings(fp string) *Forcing {
	tt := time.Now()
	fmt.Println(" loading: " + fp)

	var frc *Forcing
	var err error
	switch mmio.GetExtension(fp) {
	case ".nc":
		frc, err = FromNC(fp)
	case ".csv":
		frc, err = FromCSV(fp)
	case ".gob":
		frc, err = LoadGobForcing(fp)
	default:
		panic("unknown frc type")
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf(" Forcing loaded - %v\n", time.Since(tt))
	return frc
}

// FromCSV reads "date,tmin,tmax,rh,rainfall" lines, dates formatted
// yyyy-mm-dd, one line per day, header optional.
func FromCSV(fp string) (*Forcing, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" forcing.FromCSV %v", err)
	}
	frc := Forcing{}
	for i, ln := range lns {
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		a := strings.Split(ln, ",")
		if len(a) != 5 {
			return nil, fmt.Errorf(" forcing.FromCSV %s line %d: need 5 fields, found %d", fp, i+1, len(a))
		}
		t, err := time.Parse("2006-01-02", strings.TrimSpace(a[0]))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf(" forcing.FromCSV %s line %d: %v", fp, i+1, err)
		}
		v := make([]float64, 4)
		for j := 0; j < 4; j++ {
			if v[j], err = strconv.ParseFloat(strings.TrimSpace(a[j+1]), 64); err != nil {
				return nil, fmt.Errorf(" forcing.FromCSV %s line %d: %v", fp, i+1, err)
			}
		}
		frc.T = append(frc.T, t)
		frc.Tn = append(frc.Tn, v[0])
		frc.Tx = append(frc.Tx, v[1])
		frc.Rh = append(frc.Rh, v[2])
		frc.Rf = append(frc.Rf, v[3])
	}
	if len(frc.T) == 0 {
		return nil, fmt.Errorf(" forcing.FromCSV %s: no records", fp)
	}
	return &frc, nil
}
