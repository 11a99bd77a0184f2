// Package prefs persists viewer preferences as JSON in the user config dir.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	appDir    = "panorama-reader"
	prefsFile = "preferences.json"
)

// Values is the on-disk preference record. Pointer fields distinguish
// "never set" from false so defaults can differ per field.
type Values struct {
	LastDir     string  `json:"last_dir,omitempty"`
	LastExport  string  `json:"last_export_dir,omitempty"`
	Imperial    *bool   `json:"imperial,omitempty"`
	Decorations *bool   `json:"decorations,omitempty"`
	Zoom        float64 `json:"zoom,omitempty"`
}

// Prefs guards a Values record and the file it came from.
type Prefs struct {
	mu     sync.RWMutex
	values Values
	path   string
}

// DefaultPath returns ~/.config/panorama-reader/preferences.json (or the
// platform equivalent).
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, prefsFile)
}

// Load reads preferences from DefaultPath.
func Load() *Prefs {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads preferences from path. A missing or unreadable file
// yields defaults.
func LoadFrom(path string) *Prefs {
	p := &Prefs{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.values)
	return p
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// LastDir is the directory of the last opened result.
func (p *Prefs) LastDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.LastDir
}

func (p *Prefs) SetLastDir(dir string) {
	p.mu.Lock()
	p.values.LastDir = dir
	p.mu.Unlock()
}

// LastExportDir is the directory of the last exported image.
func (p *Prefs) LastExportDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.LastExport
}

func (p *Prefs) SetLastExportDir(dir string) {
	p.mu.Lock()
	p.values.LastExport = dir
	p.mu.Unlock()
}

// Imperial defaults to true.
func (p *Prefs) Imperial() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return boolOr(p.values.Imperial, true)
}

func (p *Prefs) SetImperial(on bool) {
	p.mu.Lock()
	p.values.Imperial = &on
	p.mu.Unlock()
}

// Decorations defaults to true.
func (p *Prefs) Decorations() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return boolOr(p.values.Decorations, true)
}

func (p *Prefs) SetDecorations(on bool) {
	p.mu.Lock()
	p.values.Decorations = &on
	p.mu.Unlock()
}

// Zoom returns the stored zoom, or 1 if unset.
func (p *Prefs) Zoom() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.values.Zoom <= 0 {
		return 1
	}
	return p.values.Zoom
}

func (p *Prefs) SetZoom(zoom float64) {
	p.mu.Lock()
	p.values.Zoom = zoom
	p.mu.Unlock()
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
