package prep

import (
	"time"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/Hari-Vignesh214/smart-irrigation-system/forcing"
)

const (
	StageDays = 20  // days per growth stage
	zcap      = 10. // rootzone water capacity, allocation units
	kdry      = .05 // daily drydown fraction [-]
)

// BuildLandParameters expands a field and its climate record into the daily
// parameter sequence driving the allocation solver. Soil moisture starts
// from the field's antecedent state and follows a simple drydown bucket,
// recharged by rainfall.
func BuildLandParameters(fld *Field, frc *forcing.Forcing, plant time.Time) []irrigate.LandParameters {
	ep := frc.PotentialET(fld.Lat)
	crop := CropName(fld.Crop)
	recs := make([]irrigate.LandParameters, frc.Nts())
	sm := fld.SoilMoisture
	for j, t := range frc.T {
		recs[j] = irrigate.LandParameters{
			SoilMoisture:       sm,
			CropType:           crop,
			GrowthStage:        int(t.Sub(plant).Hours() / 24. / StageDays),
			Temperature:        (frc.Tx[j] + frc.Tn[j]) / 2.,
			Humidity:           frc.Rh[j],
			RainfallForecast:   frc.Rf[j],
			Evapotranspiration: ep[j],
		}
		sm = sm*(1.-kdry) + frc.Rf[j]/zcap
		if sm > 1. {
			sm = 1.
		} else if sm < 0. {
			sm = 0.
		}
	}
	return recs
}
