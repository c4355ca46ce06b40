package main

/*
	Smart irrigation water allocation

	this example schedules a fixed 10-unit supply over a three-day corn
	forecast and prints the resulting plan
*/

import (
	"fmt"
	"log"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
)

func main() {
	recs := []irrigate.LandParameters{
		{SoilMoisture: .3, CropType: "corn", GrowthStage: 2, Temperature: 25., Humidity: 60., RainfallForecast: .1, Evapotranspiration: .05},
		{SoilMoisture: .4, CropType: "corn", GrowthStage: 3, Temperature: 28., Humidity: 55., RainfallForecast: 0., Evapotranspiration: .06},
		{SoilMoisture: .2, CropType: "corn", GrowthStage: 4, Temperature: 30., Humidity: 50., RainfallForecast: .2, Evapotranspiration: .07},
	}

	s := irrigate.New(10., len(recs))
	pln, err := s.Solve(recs)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println("Optimization Results:")
	for _, a := range pln.Schedule {
		fmt.Printf("Day %d: allocate %.2f units to %s (efficiency: %.1f%%)\n", a.Day, a.Water, a.Params.CropType, a.Efficiency)
	}
	fmt.Printf("Total water used: %.2f\n", pln.TotalWaterUsed)
	fmt.Printf("Water savings: %.2f\n", pln.WaterSavings)
	fmt.Printf("Total efficiency: %.2f\n", pln.TotalEfficiency)
}
