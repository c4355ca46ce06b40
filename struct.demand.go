package irrigate

import "math"

// DemandModel maps a land state to its net per-period water requirement.
// Lookup tables are held as data so new crop types or growth stages can be
// added without touching solver logic.
type DemandModel struct {
	CropReq    map[string]float64 // base requirement by crop type [units/period]
	DefaultReq float64            // applied to unrecognized crop types
	GrowthMult []float64          // growth-stage multipliers; stages beyond the table hold the final value
}

// DefaultDemandModel returns the stock crop and growth-stage tables.
func DefaultDemandModel() DemandModel {
	return DemandModel{
		CropReq: map[string]float64{
			"corn":     2.5,
			"wheat":    1.8,
			"soybeans": 2.,
			"cotton":   2.2,
			"rice":     3.5,
		},
		DefaultReq: 2.,
		GrowthMult: []float64{.3, .6, 1., 1.2, .8, .4},
	}
}

// Requirement computes the net water requirement of one period: crop base
// rate scaled by growth stage, temperature, humidity and soil moisture, less
// forecast rainfall, floored at zero. Pure; numeric domains are unchecked and
// degrade through the formulas rather than raising.
func (dm *DemandModel) Requirement(p *LandParameters) float64 {
	q, ok := dm.CropReq[p.CropType]
	if !ok {
		q = dm.DefaultReq
	}
	if n := len(dm.GrowthMult); n > 0 {
		i := p.GrowthStage
		if i >= n {
			i = n - 1 // saturate, not an error
		}
		if i < 0 {
			i = 0
		}
		q *= dm.GrowthMult[i]
	}
	q *= 1. + (p.Temperature-20.)/100.
	q *= 1. - (p.Humidity-50.)/200.
	q *= math.Max(.1, 1.-p.SoilMoisture)
	q -= p.RainfallForecast
	return math.Max(0., q)
}
