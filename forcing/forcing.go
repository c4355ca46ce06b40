package forcing

import "time"

// Forcing holds the daily climate record for a single field/station.
type Forcing struct {
	T      []time.Time // [date ID]
	Tn, Tx []float64   // daily min/max air temperature [°C]
	Rh     []float64   // mean relative humidity [%]
	Rf     []float64   // rainfall depth, in allocation units
}

func (frc *Forcing) Nts() int { return len(frc.T) }
