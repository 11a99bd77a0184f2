// Package app provides application state, events and file watching for the
// panorama viewer.
package app

import (
	"fmt"
	goimage "image"
	"log"
	"sync"
	"time"

	panoimage "panorama-reader/internal/image"
	"panorama-reader/internal/inspect"
	"panorama-reader/internal/result"
	"panorama-reader/internal/resultfile"
)

// State holds the loaded result, its rendering and the current selection.
//
// The result itself is never modified once loaded. Selection is the only
// value that changes on user input; it is passed to the inspector on every
// pick and read by the canvas on every repaint.
type State struct {
	mu sync.RWMutex

	// Loaded result
	Path string
	Data *result.Data

	// Rendering (Base never carries decorations)
	Base    *goimage.RGBA
	Display *goimage.RGBA

	// User choices
	Selection   *goimage.Point
	Options     inspect.Options
	Decorations bool

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventResultLoaded EventType = iota
	EventLoadFailed
	EventSelectionChanged
	EventDisplayChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		Options:     inspect.DefaultOptions(),
		Decorations: true,
		listeners:   make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadResult loads, validates and renders the result file at path.
// On failure the previous result stays active.
func (s *State) LoadResult(path string) error {
	data, err := resultfile.Load(path)
	if err != nil {
		s.Emit(EventLoadFailed, err)
		return err
	}
	s.SetResult(path, data)
	return nil
}

// SetResult installs an already validated result and renders it.
func (s *State) SetResult(path string, data *result.Data) {
	start := time.Now()
	base := panoimage.Build(data)
	log.Printf("Render: %dx%d in %v", data.Width(), data.Height(), time.Since(start).Round(time.Millisecond))

	s.mu.Lock()
	s.Path = path
	s.Data = data
	s.Base = base
	s.Selection = nil
	s.Display = s.decorate()
	s.mu.Unlock()

	s.Emit(EventResultLoaded, path)
}

// decorate returns the image to display. Caller holds the lock.
func (s *State) decorate() *goimage.RGBA {
	if !s.Decorations || s.Base == nil {
		return s.Base
	}
	out := goimage.NewRGBA(s.Base.Rect)
	copy(out.Pix, s.Base.Pix)
	panoimage.Decorate(out, s.Data)
	return out
}

// Image returns the image to display, or nil if nothing is loaded.
func (s *State) Image() *goimage.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Display
}

// SetDecorations toggles ticks and the eye-level line.
func (s *State) SetDecorations(on bool) {
	s.mu.Lock()
	s.Decorations = on
	s.Display = s.decorate()
	display := s.Display
	s.mu.Unlock()

	s.Emit(EventDisplayChanged, display)
}

// SetImperial toggles imperial units in the inspection record.
func (s *State) SetImperial(on bool) {
	s.mu.Lock()
	s.Options.Imperial = on
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, s.Record())
}

// Select makes pixel (x, y) the current selection and returns its record.
// Pixels outside the raster are rejected and leave the selection unchanged.
func (s *State) Select(x, y int) (inspect.Record, error) {
	s.mu.Lock()
	if s.Data == nil {
		s.mu.Unlock()
		return inspect.Empty(), fmt.Errorf("no result loaded")
	}
	if !s.Data.Contains(x, y) {
		s.mu.Unlock()
		return inspect.Empty(), fmt.Errorf("pixel (%d, %d) outside %dx%d raster",
			x, y, s.Data.Width(), s.Data.Height())
	}
	s.Selection = &goimage.Point{X: x, Y: y}
	rec := inspect.Inspect(s.Data, x, y, s.Options)
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, rec)
	return rec, nil
}

// ClearSelection removes the current selection.
func (s *State) ClearSelection() {
	s.mu.Lock()
	s.Selection = nil
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, inspect.Empty())
}

// CurrentSelection returns the selected pixel, if any.
func (s *State) CurrentSelection() (goimage.Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Selection == nil {
		return goimage.Point{}, false
	}
	return *s.Selection, true
}

// Record returns the inspection record of the current selection, or the
// empty record when nothing is selected.
func (s *State) Record() inspect.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Data == nil || s.Selection == nil {
		return inspect.Empty()
	}
	return inspect.Inspect(s.Data, s.Selection.X, s.Selection.Y, s.Options)
}
