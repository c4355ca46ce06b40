package prep

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"

	"github.com/im7mortal/UTM"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Field aggregates the static properties of an irrigated parcel.
type Field struct {
	Name         string
	Lat, Lng     float64 // centroid [°]
	AreaHa       float64
	Crop         int     // dominant crop class
	SoilMoisture float64 // antecedent, [0,1]
}

// LoadBoundary reads the first polygon of a GeoJSON file and returns its
// centroid and area. Projected (UTM) coordinates are detected and converted
// back to geographic using the given zone, northern hemisphere assumed.
func LoadBoundary(fp string, utmZone int) (name string, lat, lng, areaHa float64, err error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return "", 0., 0., 0., fmt.Errorf(" prep.LoadBoundary %v", err)
	}

	var ft *geojson.Feature
	if fc, e := geojson.UnmarshalFeatureCollection(b); e == nil && len(fc.Features) > 0 {
		ft = fc.Features[0]
	} else if f1, e := geojson.UnmarshalFeature(b); e == nil {
		ft = f1
	} else {
		return "", 0., 0., 0., fmt.Errorf(" prep.LoadBoundary %s: not a feature (collection)", fp)
	}

	name = ft.Properties.MustString("name", "field")
	cent, aplan := planar.CentroidArea(ft.Geometry)

	if cent.Lon() < -180. || cent.Lon() > 180. || cent.Lat() < -90. || cent.Lat() > 90. { // projected
		lat, lng, err = UTM.ToLatLon(cent.X(), cent.Y(), utmZone, "", true)
		if err != nil {
			return "", 0., 0., 0., fmt.Errorf(" prep.LoadBoundary %v", err)
		}
		areaHa = math.Abs(aplan) / 1e4
	} else {
		lat, lng = cent.Lat(), cent.Lon()
		areaHa = math.Abs(geo.Area(ft.Geometry)) / 1e4
	}
	return
}

func (fld *Field) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" field.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(fld); err != nil {
		return fmt.Errorf(" field.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobField(fp string) (*Field, error) {
	var fld Field
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&fld); err != nil {
		return nil, err
	}
	f.Close()
	return &fld, nil
}
