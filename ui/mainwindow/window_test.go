package mainwindow

import (
	"path/filepath"
	"strings"
	"testing"

	"panorama-reader/internal/app"
	"panorama-reader/internal/result"
	"panorama-reader/internal/resultfile"
	"panorama-reader/ui/prefs"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResult(t *testing.T) string {
	t.Helper()
	d := &result.Data{
		Params: result.Params{
			View: result.View{
				Frame:    result.Frame{Direction: 180, FOV: 30, MaxDistance: 5000},
				Coloring: result.SimpleColoring{},
			},
			Output: result.Output{Width: 30, Height: 10},
		},
		Grid: result.NewGrid(30, 10),
	}
	d.Grid[4][7] = []result.Sample{{Latitude: 45, Longitude: 7, Distance: 2500, Elevation: 900}}
	path := filepath.Join(t.TempDir(), "alps"+resultfile.Extension)
	require.NoError(t, resultfile.Save(path, d))
	return path
}

func newTestWindow(t *testing.T) (*MainWindow, *app.State) {
	t.Helper()
	state := app.NewState()
	p := prefs.LoadFrom(filepath.Join(t.TempDir(), "prefs.json"))
	mw := New(test.NewApp(), state, p)
	t.Cleanup(mw.stopWatching)
	return mw, state
}

func TestOpenResultAndPick(t *testing.T) {
	mw, state := newTestWindow(t)
	path := writeResult(t)

	require.NoError(t, mw.OpenResult(path))
	assert.Equal(t, appTitle+" - alps.pano", mw.Title())
	assert.Equal(t, filepath.Dir(path), mw.prefs.LastDir())
	require.NotNil(t, mw.watcher)

	mw.onPick(7, 4)
	p, ok := state.CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, 7, p.X)
	assert.True(t, strings.HasPrefix(mw.statusBar.Text, "Pixel (7, 4)"))

	mw.onReload()
	p, ok = state.CurrentSelection()
	require.True(t, ok, "reload keeps a selection that is still inside the raster")
	assert.Equal(t, 4, p.Y)
}

func TestOpenResultFailureKeepsState(t *testing.T) {
	mw, state := newTestWindow(t)
	err := mw.OpenResult(filepath.Join(t.TempDir(), "nope.pano"))
	assert.Error(t, err)
	assert.Nil(t, state.Data)
	assert.Nil(t, mw.watcher)
	assert.True(t, strings.HasPrefix(mw.statusBar.Text, "Load failed"))
}

func TestToggles(t *testing.T) {
	mw, state := newTestWindow(t)
	assert.Equal(t, "✓ Imperial Units", mw.imperialItem.Label)

	mw.onToggleImperial()
	assert.False(t, state.Options.Imperial)
	assert.False(t, mw.prefs.Imperial())
	assert.Equal(t, "  Imperial Units", mw.imperialItem.Label)

	mw.onToggleDecorations()
	assert.False(t, state.Decorations)
	assert.Equal(t, "  Show Ticks and Eye Level", mw.decorationsItem.Label)
}
