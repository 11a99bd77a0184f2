package panels

import (
	"testing"

	"panorama-reader/internal/app"
	"panorama-reader/internal/inspect"
	"panorama-reader/internal/result"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panelData() *result.Data {
	d := &result.Data{
		Params: result.Params{
			View: result.View{
				Frame:    result.Frame{Direction: 0, FOV: 10, MaxDistance: 1000},
				Coloring: result.SimpleColoring{},
			},
			Output: result.Output{Width: 10, Height: 10},
		},
		Grid: result.NewGrid(10, 10),
	}
	d.Grid[5][5] = []result.Sample{{Latitude: 50, Longitude: 20, Distance: 500, Elevation: 100}}
	return d
}

func TestInspectPanelFollowsSelection(t *testing.T) {
	test.NewApp()

	state := app.NewState()
	ip := NewInspectPanel(state)
	assert.Equal(t, inspect.Empty().Lines(), ip.Text())

	state.SetResult("mem", panelData())
	assert.Contains(t, ip.resultLabel.Text, "10 x 10 px, 1 hits")

	rec, err := state.Select(5, 5)
	require.NoError(t, err)
	assert.Equal(t, rec.Lines(), ip.Text())
	assert.Equal(t, "Pixel (5, 5)", ip.pixelLabel.Text)
	assert.Equal(t, "Elevation: 100.0 m (329 ft)", ip.Text()[0])

	// Empty pixel keeps direction but clears terrain fields
	_, err = state.Select(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Elevation: none", ip.Text()[0])
	assert.NotEqual(t, "Azimuth: none", ip.Text()[5])

	state.ClearSelection()
	assert.Equal(t, inspect.Empty().Lines(), ip.Text())
	assert.Empty(t, ip.pixelLabel.Text)
}
