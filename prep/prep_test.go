package prep

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Hari-Vignesh214/smart-irrigation-system/forcing"
	"github.com/stretchr/testify/require"
)

func TestCropName(t *testing.T) {
	require.Equal(t, "corn", CropName(Corn))
	require.Equal(t, "rice", CropName(Rice))
	require.Equal(t, "fallow", CropName(Fallow))
	require.Equal(t, "unclassified", CropName(Unclassified))
	require.Equal(t, "unclassified", CropName(99))
}

func TestDominantClass(t *testing.T) {
	require.Equal(t, Corn, dominantClass(map[int]int{1: Corn, 2: Corn, 3: Wheat, 4: Unclassified}))
	require.Equal(t, Wheat, dominantClass(map[int]int{1: Rice, 2: Wheat})) // tie broken to lower class
	require.Equal(t, Unclassified, dominantClass(map[int]int{9: Unclassified}))
}

func TestLoadBoundaryGeographic(t *testing.T) {
	gj := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"backforty"},"geometry":{"type":"Polygon","coordinates":[[[-79.61,43.6],[-79.6,43.6],[-79.6,43.61],[-79.61,43.61],[-79.61,43.6]]]}}]}`
	fp := filepath.Join(t.TempDir(), "bnd.geojson")
	require.NoError(t, os.WriteFile(fp, []byte(gj), 0644))

	name, lat, lng, areaHa, err := LoadBoundary(fp, 17)
	require.NoError(t, err)
	require.Equal(t, "backforty", name)
	require.InDelta(t, 43.605, lat, .001)
	require.InDelta(t, -79.605, lng, .001)
	require.InDelta(t, 89.5, areaHa, 2.5) // 0.01° square near 43.6°N
}

func TestLoadBoundaryProjected(t *testing.T) {
	// 1 ha square in UTM zone 17N, near Toronto
	gj := `{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[630000,4833000],[630100,4833000],[630100,4833100],[630000,4833100],[630000,4833000]]]}}`
	fp := filepath.Join(t.TempDir(), "bnd.geojson")
	require.NoError(t, os.WriteFile(fp, []byte(gj), 0644))

	name, lat, lng, areaHa, err := LoadBoundary(fp, 17)
	require.NoError(t, err)
	require.Equal(t, "field", name)
	require.InDelta(t, 43.6, lat, .2)
	require.InDelta(t, -79.4, lng, .2)
	require.InDelta(t, 1., areaHa, .01)
}

func TestLoadBoundaryMalformed(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "bnd.geojson")
	require.NoError(t, os.WriteFile(fp, []byte("not geojson"), 0644))
	_, _, _, _, err := LoadBoundary(fp, 17)
	require.Error(t, err)
}

func juneRecord() *forcing.Forcing {
	d0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &forcing.Forcing{
		T:  []time.Time{d0, d0.AddDate(0, 0, 1), d0.AddDate(0, 0, 2), d0.AddDate(0, 0, 3)},
		Tn: []float64{12., 14., 15., 13.},
		Tx: []float64{24., 27., 29., 25.},
		Rh: []float64{55., 60., 48., 72.},
		Rf: []float64{0., .1, 0., .4},
	}
}

func TestBuildLandParameters(t *testing.T) {
	fld := &Field{Name: "backforty", Lat: 43.6, Lng: -79.6, AreaHa: 12., Crop: Corn, SoilMoisture: .3}
	frc := juneRecord()
	plant := frc.T[0].AddDate(0, 0, -39)

	recs := BuildLandParameters(fld, frc, plant)
	require.Len(t, recs, 4)

	require.Equal(t, "corn", recs[0].CropType)
	require.Equal(t, 1, recs[0].GrowthStage) // day 39
	require.Equal(t, 2, recs[1].GrowthStage) // day 40 crosses a stage boundary
	require.Equal(t, .3, recs[0].SoilMoisture)
	require.Equal(t, 18., recs[0].Temperature)
	require.Equal(t, 55., recs[0].Humidity)
	require.Equal(t, .1, recs[1].RainfallForecast)
	require.Greater(t, recs[0].Evapotranspiration, 0.)

	// drydown bucket: decay plus rainfall recharge, clamped to [0,1]
	require.InDelta(t, .3*(1.-kdry), recs[1].SoilMoisture, 1e-12)
	require.InDelta(t, recs[1].SoilMoisture*(1.-kdry)+.1/zcap, recs[2].SoilMoisture, 1e-12)
	for _, r := range recs {
		require.GreaterOrEqual(t, r.SoilMoisture, 0.)
		require.LessOrEqual(t, r.SoilMoisture, 1.)
	}
}

func TestBuildLandParametersPreseason(t *testing.T) {
	fld := &Field{Crop: Soybeans, SoilMoisture: .5}
	frc := juneRecord()
	plant := frc.T[0].AddDate(0, 0, 24) // not yet planted

	recs := BuildLandParameters(fld, frc, plant)
	require.Negative(t, recs[0].GrowthStage) // demand model clamps to first stage
	require.Equal(t, "soybeans", recs[0].CropType)
}
