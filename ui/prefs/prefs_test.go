package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, p.Imperial())
	assert.True(t, p.Decorations())
	assert.Equal(t, 1.0, p.Zoom())
	assert.Empty(t, p.LastDir())
}

func TestSaveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", prefsFile)
	p := LoadFrom(path)
	p.SetImperial(false)
	p.SetDecorations(false)
	p.SetZoom(2.5)
	p.SetLastDir("/data/runs")
	p.SetLastExportDir("/data/png")
	require.NoError(t, p.Save())

	q := LoadFrom(path)
	assert.False(t, q.Imperial())
	assert.False(t, q.Decorations())
	assert.Equal(t, 2.5, q.Zoom())
	assert.Equal(t, "/data/runs", q.LastDir())
	assert.Equal(t, "/data/png", q.LastExportDir())
}

func TestCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
	p := LoadFrom(path)
	assert.True(t, p.Imperial())
}
