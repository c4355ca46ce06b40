package main

/*
	Smart irrigation water allocation

	this example builds a seasonal parameter record from a daily climate
	csv and a field description, then schedules the seasonal supply and
	writes the standard reports
*/

import (
	"log"
	"time"

	irrigate "github.com/Hari-Vignesh214/smart-irrigation-system"
	"github.com/Hari-Vignesh214/smart-irrigation-system/forcing"
	"github.com/Hari-Vignesh214/smart-irrigation-system/postpro"
	"github.com/Hari-Vignesh214/smart-irrigation-system/prep"
	"github.com/maseology/mmio"
)

const (
	metfp = "dat/met.csv"
	sply  = 120. // seasonal supply, allocation units
	outp  = "out/"
)

func main() {
	frc := forcing.GetForcings(metfp)
	frc.CheckAndPrint()

	fld := prep.Field{Name: "backforty", Lat: 43.6, Lng: -79.6, AreaHa: 12., Crop: prep.Corn, SoilMoisture: .35}
	plant := time.Date(frc.T[0].Year(), 5, 10, 0, 0, 0, 0, time.UTC)
	recs := prep.BuildLandParameters(&fld, frc, plant)

	s := irrigate.New(sply, len(recs))
	pln, err := s.SolveConcurrent(recs)
	if err != nil {
		log.Fatalln(err)
	}

	mmio.MakeDir(outp)
	postpro.Report(pln, &s.DM, frc.T, outp)
}
