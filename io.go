package irrigate

import (
	"encoding/gob"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// SaveGob persists the plan.
func (pln *Plan) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" plan.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(pln); err != nil {
		return fmt.Errorf(" plan.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobPlan(fp string) (*Plan, error) {
	var pln Plan
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&pln); err != nil {
		return nil, err
	}
	f.Close()
	return &pln, nil
}

func SaveGobLandParameters(fp string, recs []LandParameters) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" landparameters.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(recs); err != nil {
		return fmt.Errorf(" landparameters.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobLandParameters(fp string) ([]LandParameters, error) {
	var recs []LandParameters
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&recs); err != nil {
		return nil, err
	}
	f.Close()
	return recs, nil
}

// WriteCSV exports the schedule, one row per period, with the requirement
// recomputed from the given demand model for reference.
func (pln *Plan) WriteCSV(fp string, dm *DemandModel) error {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("day,crop,stage,soilmoisture,temperature,humidity,rainfall,et,requirement,allocated,efficiency"); err != nil {
		return fmt.Errorf(" plan.WriteCSV %v", err)
	}
	for _, a := range pln.Schedule {
		p := a.Params
		csvw.WriteLine(a.Day, p.CropType, p.GrowthStage, p.SoilMoisture, p.Temperature, p.Humidity,
			p.RainfallForecast, p.Evapotranspiration, dm.Requirement(&p), a.Water, a.Efficiency)
	}
	return nil
}

// ReadLandParametersCSV loads a record sequence from
// "soilmoisture,croptype,growthstage,temperature,humidity,rainfall,et"
// lines, one period per line, header optional.
func ReadLandParametersCSV(fp string) ([]LandParameters, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" irrigate.ReadLandParametersCSV %v", err)
	}
	recs := make([]LandParameters, 0, len(lns))
	for i, ln := range lns {
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		a := strings.Split(ln, ",")
		if len(a) != 7 {
			return nil, fmt.Errorf(" irrigate.ReadLandParametersCSV %s line %d: need 7 fields, found %d", fp, i+1, len(a))
		}
		sm, err := strconv.ParseFloat(strings.TrimSpace(a[0]), 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf(" irrigate.ReadLandParametersCSV %s line %d: %v", fp, i+1, err)
		}
		stg, err := strconv.Atoi(strings.TrimSpace(a[2]))
		if err != nil {
			return nil, fmt.Errorf(" irrigate.ReadLandParametersCSV %s line %d: %v", fp, i+1, err)
		}
		fs := make([]float64, 4)
		for j, k := range []int{3, 4, 5, 6} {
			v, err := strconv.ParseFloat(strings.TrimSpace(a[k]), 64)
			if err != nil {
				return nil, fmt.Errorf(" irrigate.ReadLandParametersCSV %s line %d: %v", fp, i+1, err)
			}
			fs[j] = v
		}
		recs = append(recs, LandParameters{
			SoilMoisture:       sm,
			CropType:           strings.TrimSpace(a[1]),
			GrowthStage:        stg,
			Temperature:        fs[0],
			Humidity:           fs[1],
			RainfallForecast:   fs[2],
			Evapotranspiration: fs[3],
		})
	}
	return recs, nil
}
