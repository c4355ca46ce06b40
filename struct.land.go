package irrigate

// LandParameters describes the state of the irrigated land over one period
// (one day). One record per period; slice order is time order.
type LandParameters struct {
	SoilMoisture       float64 // fraction saturation [0,1]
	CropType           string
	GrowthStage        int     // ordinal, saturates on the demand model's multiplier table
	Temperature        float64 // [°C]
	Humidity           float64 // [%]
	RainfallForecast   float64 // water expected to arrive during the period [units]
	Evapotranspiration float64 // [m/d] informational; not consumed by the demand formula
}
