package prep

import (
	"fmt"
	"log"
	"sync"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

// BuildField assembles (and saves) the static field properties from a grid
// definition, soil moisture and crop classification rasters, and a GeoJSON
// boundary.
func BuildField(gobDir, gdefFP, smFP, cropFP, bndFP string, utmZone int) *Field {
	gd, err := grid.ReadGDEF(gdefFP, true)
	if err != nil {
		log.Fatalf(" BuildField %v", err)
	}

	var wg sync.WaitGroup
	var name string
	var lat, lng, areaHa, sm float64
	var crop int

	checkforfile := func(fp string) {
		if _, ok := mmio.FileExists(fp); !ok {
			log.Fatalf(" BuildField file not found: %s", fp)
		}
	}

	readBND := func() {
		tt := mmio.NewTimer()
		defer wg.Done()
		checkforfile(bndFP)
		fmt.Printf(" loading: %s\n", bndFP)
		var err error
		if name, lat, lng, areaHa, err = LoadBoundary(bndFP, utmZone); err != nil {
			log.Fatalf(" BuildField %v", err)
		}
		tt.Lap("boundary loaded")
	}

	readSM := func() {
		tt := mmio.NewTimer()
		defer wg.Done()
		checkforfile(smFP)
		fmt.Printf(" loading: %s\n", smFP)
		var g grid.Real
		g.NewGD32(smFP, gd)
		s, n := 0., 0
		for _, v := range g.A {
			if v < 0. {
				continue // nodata
			}
			if v > 1. {
				v = 1.
			}
			s += v
			n++
		}
		if n == 0 {
			log.Fatalf(" BuildField: no valid soil moisture cells in %s", smFP)
		}
		sm = s / float64(n)
		tt.Lap("soil moisture loaded")
	}

	readCrop := func() {
		tt := mmio.NewTimer()
		defer wg.Done()
		checkforfile(cropFP)
		fmt.Printf(" loading: %s\n", cropFP)
		var g grid.Indx
		g.LoadGDef(gd)
		g.NewShort(cropFP, true)
		crop = dominantClass(g.Values())
		tt.Lap("crop classes loaded")
	}

	wg.Add(3)
	go readBND()
	go readSM()
	go readCrop()
	wg.Wait()

	fld := Field{
		Name:         name,
		Lat:          lat,
		Lng:          lng,
		AreaHa:       areaHa,
		Crop:         crop,
		SoilMoisture: sm,
	}

	if err := fld.SaveGob(gobDir + "FIELD.gob"); err != nil {
		log.Fatalf(" BuildField error: %v", err)
	}

	return &fld
}

// dominantClass returns the modal classification, ignoring Unclassified.
func dominantClass(vals map[int]int) int {
	c := make(map[int]int)
	for _, v := range vals {
		if v == Unclassified {
			continue
		}
		c[v]++
	}
	dom, nmax := Unclassified, 0
	for v, n := range c {
		if n > nmax || (n == nmax && v < dom) {
			dom, nmax = v, n
		}
	}
	return dom
}
