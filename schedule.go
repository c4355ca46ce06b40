package irrigate

import "fmt"

// Allocation is one period's entry of the optimal schedule: the water
// assigned to that day, the land state it was computed from, and the
// efficiency score of the assignment. Computed once during policy replay,
// never mutated afterward.
type Allocation struct {
	Day        int     // 1-based period index
	Water      float64 // allocated this period [units]
	Params     LandParameters
	Efficiency float64 // percent of requirement met [0,100]
}

// Plan is the optimizer result: the ordered allocation schedule and its
// summary totals. TotalEfficiency is the sum of per-period scores, not an
// average; divide by the period count for a mean. WaterSavings is exactly
// Cap less TotalWaterUsed.
type Plan struct {
	Schedule        []Allocation
	TotalWaterUsed  float64
	TotalEfficiency float64
	WaterSavings    float64
}

// Print writes the schedule and totals as a fixed-width table.
func (pln *Plan) Print() {
	fmt.Printf("%5s%10s%7s%8s%8s%8s%8s%10s%8s\n", "day", "crop", "stage", "soilm", "temp", "rh", "rain", "alloc", "effic")
	for _, a := range pln.Schedule {
		p := a.Params
		fmt.Printf("%5d%10s%7d%8.2f%8.1f%8.1f%8.2f%10.3f%8.1f\n",
			a.Day, p.CropType, p.GrowthStage, p.SoilMoisture, p.Temperature, p.Humidity, p.RainfallForecast, a.Water, a.Efficiency)
	}
	fmt.Printf(" total water used: %.2f\n", pln.TotalWaterUsed)
	fmt.Printf(" total efficiency: %.2f\n", pln.TotalEfficiency)
	fmt.Printf(" water savings: %.2f\n", pln.WaterSavings)
}
