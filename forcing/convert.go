package forcing

import "time"

// Window returns the sub-record spanning [t0,t1] inclusive. Slices share
// backing arrays with the source.
func (frc *Forcing) Window(t0, t1 time.Time) *Forcing {
	j0, j1 := 0, len(frc.T)
	for j, t := range frc.T {
		if t.Before(t0) {
			j0 = j + 1
		}
		if t.After(t1) {
			j1 = j
			break
		}
	}
	if j0 >= j1 {
		return &Forcing{}
	}
	return &Forcing{
		T:  frc.T[j0:j1],
		Tn: frc.Tn[j0:j1],
		Tx: frc.Tx[j0:j1],
		Rh: frc.Rh[j0:j1],
		Rf: frc.Rf[j0:j1],
	}
}

// ScaleRainfall converts rainfall depths in place, say from mm to the
// allocation unit.
func (frc *Forcing) ScaleRainfall(f float64) {
	for j := range frc.T {
		frc.Rf[j] *= f
	}
}
