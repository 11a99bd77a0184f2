package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func testData(w, h int) *Data {
	return &Data{
		Params: Params{
			View: View{
				Frame:    Frame{Direction: 90, FOV: 30, MaxDistance: 50000},
				Coloring: SimpleColoring{Level: 0, MaxDistance: 50000},
			},
			Output: Output{Width: w, Height: h},
		},
		Grid: NewGrid(w, h),
	}
}

func TestValidateAcceptsWellFormedData(t *testing.T) {
	d := testData(4, 3)
	d.Grid[1][2] = []Sample{
		{Distance: 100, Elevation: 20, Color: TerrainColor()},
		{Distance: 250, Elevation: 40, Color: ExplicitColor(RGBA{R: 1, G: 0.5, B: 0, A: 0.3})},
	}
	require.NoError(t, d.Validate())
}

func TestValidateDimensionMismatch(t *testing.T) {
	d := testData(4, 3)
	d.Grid = d.Grid[:2]
	assert.ErrorIs(t, d.Validate(), ErrDimensionMismatch)

	d = testData(4, 3)
	d.Grid[2] = d.Grid[2][:3]
	assert.ErrorIs(t, d.Validate(), ErrDimensionMismatch)

	d = testData(0, 0)
	assert.ErrorIs(t, d.Validate(), ErrDimensionMismatch)
}

func TestValidateDistanceOrder(t *testing.T) {
	d := testData(2, 2)
	d.Grid[0][1] = []Sample{{Distance: 500}, {Distance: 100}}
	err := d.Validate()
	require.ErrorIs(t, err, ErrDistanceOrder)
	assert.Contains(t, err.Error(), "pixel (1, 0)")
}

func TestValidateColorRange(t *testing.T) {
	d := testData(2, 2)
	d.Grid[1][1] = []Sample{{Color: ExplicitColor(RGBA{R: 1.2, A: 1})}}
	assert.ErrorIs(t, d.Validate(), ErrColorRange)
}

func TestValidateNeedsColoringAndFOV(t *testing.T) {
	d := testData(2, 2)
	d.Params.View.Coloring = nil
	assert.ErrorIs(t, d.Validate(), ErrNoColoring)

	d = testData(2, 2)
	d.Params.View.Frame.FOV = 0
	assert.ErrorIs(t, d.Validate(), ErrInvalidFrame)
}

func TestWaterLevelAccessor(t *testing.T) {
	for _, c := range []Coloring{
		SimpleColoring{Level: 12, MaxDistance: 1000},
		ShadingColoring{Level: 12, AmbientLight: 0.3, LightDirection: r3.Vec{X: 1}},
	} {
		assert.Equal(t, 12.0, c.WaterLevel())
	}
}

func TestContains(t *testing.T) {
	d := testData(4, 3)
	assert.True(t, d.Contains(0, 0))
	assert.True(t, d.Contains(3, 2))
	assert.False(t, d.Contains(4, 0))
	assert.False(t, d.Contains(0, 3))
	assert.False(t, d.Contains(-1, 1))
}

func TestTaggedJSON(t *testing.T) {
	fog := 12000.0
	meta := "meta.json"
	d := testData(1, 1)
	d.Params.View.Position = Position{Latitude: 49.5, Longitude: 20.1, Altitude: Altitude{Kind: AltitudeRelative, Value: 2}}
	d.Params.View.Coloring = ShadingColoring{Level: 1.5, AmbientLight: 0.2, LightDirection: r3.Vec{X: 0, Y: 0.6, Z: 0.8}}
	d.Params.View.FogDistance = &fog
	d.Params.Output.FileMetadata = &meta
	d.Params.Output.Ticks = []Tick{
		{Kind: TickSingle, Azimuth: 95, Size: 10, Labelled: true},
		{Kind: TickMultiple, Bias: 0, Step: 5, Size: 4},
	}
	d.Params.Env = json.RawMessage(`{"shape":{"Spherical":{"radius":6378000}}}`)
	d.Grid[0][0] = []Sample{
		{Distance: 10, Color: ExplicitColor(RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1})},
		{Distance: 20, Normal: r3.Vec{Z: 1}, Color: TerrainColor()},
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"altitude":{"Relative":2}`)
	assert.Contains(t, string(raw), `"coloring":{"Shading":`)
	assert.Contains(t, string(raw), `"color":"Terrain"`)
	assert.Contains(t, string(raw), `{"Multiple":`)

	var back Data
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.Params.View, back.Params.View)
	assert.Equal(t, d.Params.Output, back.Params.Output)
	assert.Equal(t, d.Grid, back.Grid)
	assert.JSONEq(t, string(d.Params.Env), string(back.Params.Env))
}

func TestUnknownVariantRejected(t *testing.T) {
	var v View
	err := v.UnmarshalJSON([]byte(`{"coloring":{"Phong":{}}}`))
	assert.ErrorContains(t, err, "unknown variant")

	var c ColorSource
	assert.Error(t, json.Unmarshal([]byte(`{"Rgb":{},"Terrain":{}}`), &c))
}

func TestSummarize(t *testing.T) {
	d := testData(3, 1)
	d.Grid[0][0] = []Sample{{Distance: 100, Elevation: 10}}
	d.Grid[0][2] = []Sample{
		{Distance: 300, Elevation: 50, Color: ExplicitColor(RGBA{A: 1})},
		{Distance: 900, Elevation: 500},
	}

	s := d.Summarize()
	assert.Equal(t, 3, s.Pixels)
	assert.Equal(t, 2, s.Hits)
	assert.Equal(t, 3, s.Samples)
	assert.Equal(t, 1, s.Layered)
	assert.Equal(t, 1, s.Explicit)
	assert.Equal(t, 100.0, s.MinDistance)
	assert.Equal(t, 300.0, s.MaxDistance)
	assert.InDelta(t, 200.0, s.MeanDistance, 1e-9)
	assert.Equal(t, 10.0, s.MinElevation)
	assert.Equal(t, 50.0, s.MaxElevation)

	empty := testData(2, 2).Summarize()
	assert.Equal(t, 0, empty.Hits)
	assert.Zero(t, empty.MaxDistance)
}
