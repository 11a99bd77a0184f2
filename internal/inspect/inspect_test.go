package inspect

import (
	"testing"

	"panorama-reader/internal/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDistanceThresholds(t *testing.T) {
	tests := []struct {
		meters   float64
		imperial bool
		want     string
	}{
		{999, false, "999.0 m"},
		{1000, false, "1000.0 m"},
		{1000.0001, false, "1.0 km"},
		{12345, false, "12.3 km"},
		{500, true, "500.0 m (548.2 yds)"},
		{805, true, "805.0 m (882.7 yds)"},
		{806, true, "806.0 m (0.5 mi)"},
		{2500, true, "2.5 km (1.6 mi)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.meters, tt.imperial), "distance %v", tt.meters)
	}
}

func TestFormatElevation(t *testing.T) {
	assert.Equal(t, "100.0 m", FormatElevation(100, false))
	assert.Equal(t, "100.0 m (329 ft)", FormatElevation(100, true))
	assert.Equal(t, "-3.5 m", FormatElevation(-3.5, false))
}

func TestDMSTruncates(t *testing.T) {
	d, m, s := DMS(1.0)
	assert.Equal(t, [3]int{1, 0, 0}, [3]int{d, m, s})

	d, m, s = DMS(45.508333)
	assert.Equal(t, [3]int{45, 30, 29}, [3]int{d, m, s})

	d, m, s = DMS(-12.25)
	assert.Equal(t, [3]int{12, 15, 0}, [3]int{d, m, s})
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "45°30'29\"N (45.508333)", FormatLatitude(45.508333))
	assert.Equal(t, "12°15'0\"S (-12.250000)", FormatLatitude(-12.25))
	assert.Equal(t, "122°30'0\"W (-122.500000)", FormatLongitude(-122.5))
	assert.Equal(t, "0°0'0\"E (0.000000)", FormatLongitude(0))
}

func testData() *result.Data {
	d := &result.Data{
		Params: result.Params{
			View: result.View{
				Frame:    result.Frame{Direction: 180, Tilt: 1, FOV: 10, MaxDistance: 10000},
				Coloring: result.SimpleColoring{Level: 0, MaxDistance: 10000},
			},
			Output: result.Output{Width: 100, Height: 40},
		},
		Grid: result.NewGrid(100, 40),
	}
	d.Grid[20][50] = []result.Sample{
		{Latitude: 49.25, Longitude: -19.5, Distance: 1500, Elevation: 812.5},
		{Latitude: 49.3, Longitude: -19.6, Distance: 4000, Elevation: 1500},
	}
	return d
}

func TestInspectWithSample(t *testing.T) {
	rec := Inspect(testData(), 50, 20, DefaultOptions())

	require.True(t, rec.HasSample)
	assert.InDelta(t, 180.0, rec.Azimuth, 1e-9)
	assert.InDelta(t, 1.0, rec.DirElevation, 1e-9)
	assert.Equal(t, 1500.0, rec.Sample.Distance)
	assert.Equal(t, []string{
		"Elevation: 812.5 m (2673 ft)",
		"Distance: 1.5 km (0.9 mi)",
		"Latitude: 49°15'0\"N (49.250000)",
		"Longitude: 19°30'0\"W (-19.500000)",
		"Elevation: 1.000 deg",
		"Azimuth: 180.000 deg",
	}, rec.Lines())
}

func TestInspectMetricOnly(t *testing.T) {
	rec := Inspect(testData(), 50, 20, Options{})
	assert.Equal(t, "812.5 m", rec.ElevationText)
	assert.Equal(t, "1.5 km", rec.DistanceText)
}

func TestInspectWithoutSample(t *testing.T) {
	rec := Inspect(testData(), 0, 0, DefaultOptions())

	assert.False(t, rec.HasSample)
	assert.InDelta(t, 175.0, rec.Azimuth, 1e-9)
	assert.InDelta(t, 3.0, rec.DirElevation, 1e-9)
	assert.Equal(t, []string{
		"Elevation: none",
		"Distance: none",
		"Latitude: none",
		"Longitude: none",
		"Elevation: 3.000 deg",
		"Azimuth: 175.000 deg",
	}, rec.Lines())
}

func TestInspectIsRepeatable(t *testing.T) {
	d := testData()
	assert.Equal(t, Inspect(d, 50, 20, DefaultOptions()), Inspect(d, 50, 20, DefaultOptions()))
}

func TestEmptyRecord(t *testing.T) {
	for _, line := range Empty().Lines() {
		assert.Contains(t, line, ": none")
	}
}
