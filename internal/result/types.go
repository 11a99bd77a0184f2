// Package result defines the in-memory panorama simulation result: run
// parameters plus the grid of per-pixel viewing-ray samples.
package result

import (
	"encoding/json"

	"gonum.org/v1/gonum/spatial/r3"
)

// AltitudeKind tells how an Altitude value is measured.
type AltitudeKind int

const (
	AltitudeAbsolute AltitudeKind = iota // Above sea level
	AltitudeRelative                     // Above the terrain under the viewer
)

func (k AltitudeKind) String() string {
	switch k {
	case AltitudeAbsolute:
		return "Absolute"
	case AltitudeRelative:
		return "Relative"
	default:
		return "Unknown"
	}
}

// Altitude is the viewer height, either absolute or relative to terrain.
type Altitude struct {
	Kind  AltitudeKind
	Value float64
}

// Position is the geographic position of the viewer.
type Position struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  Altitude `json:"altitude"`
}

// Frame describes the viewing direction and extent, in degrees and meters.
type Frame struct {
	Direction   float64 `json:"direction"`
	Tilt        float64 `json:"tilt"`
	FOV         float64 `json:"fov"`
	MaxDistance float64 `json:"max_distance"`
}

// Coloring is the active coloring configuration. The set of implementations
// is closed: SimpleColoring and ShadingColoring.
type Coloring interface {
	WaterLevel() float64
	isColoring()
}

// SimpleColoring selects plain hypsometric tinting.
type SimpleColoring struct {
	Level       float64 `json:"water_level"`
	MaxDistance float64 `json:"max_distance"`
}

// WaterLevel returns the elevation at or below which terrain is water.
func (c SimpleColoring) WaterLevel() float64 { return c.Level }

func (SimpleColoring) isColoring() {}

// ShadingColoring carries lighting parameters for a shaded mode. The lighting
// fields are stored for round-tripping only; rendering uses the water level.
type ShadingColoring struct {
	Level          float64 `json:"water_level"`
	AmbientLight   float64 `json:"ambient_light"`
	LightDirection r3.Vec  `json:"light_dir"`
}

// WaterLevel returns the elevation at or below which terrain is water.
func (c ShadingColoring) WaterLevel() float64 { return c.Level }

func (ShadingColoring) isColoring() {}

// View bundles everything about where and how the panorama was taken.
type View struct {
	Position    Position `json:"position"`
	Frame       Frame    `json:"frame"`
	Coloring    Coloring `json:"coloring"`
	FogDistance *float64 `json:"fog_distance"`
}

// ColorKind tells where a sample's color comes from.
type ColorKind int

const (
	ColorTerrain ColorKind = iota // Hypsometric tint from elevation and distance
	ColorRGBA                     // Explicit color stored on the sample
)

// RGBA is a color with all components in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorSource is the color tag of a sample. RGBA is only meaningful when
// Kind is ColorRGBA.
type ColorSource struct {
	Kind ColorKind
	RGBA RGBA
}

// TerrainColor returns a source that asks for terrain tinting.
func TerrainColor() ColorSource {
	return ColorSource{Kind: ColorTerrain}
}

// ExplicitColor returns a source carrying a fixed color.
func ExplicitColor(c RGBA) ColorSource {
	return ColorSource{Kind: ColorRGBA, RGBA: c}
}

// Sample is one intersection of a viewing ray with terrain or an object.
type Sample struct {
	Latitude   float64     `json:"lat"`
	Longitude  float64     `json:"lon"`
	Distance   float64     `json:"distance"`
	Elevation  float64     `json:"elevation"`
	PathLength float64     `json:"path_length"`
	Normal     r3.Vec      `json:"normal"`
	Color      ColorSource `json:"color"`
}

// Grid holds the sample lists of every output pixel, indexed [y][x]. Each
// list is ordered nearest first and may be empty.
type Grid [][][]Sample

// At returns the sample list for pixel (x, y).
func (g Grid) At(x, y int) []Sample {
	return g[y][x]
}

// TickKind distinguishes single ticks from repeating ones.
type TickKind int

const (
	TickSingle TickKind = iota
	TickMultiple
)

// Tick is an azimuth marker drawn along the top edge of the image.
// Single ticks use Azimuth; multiple ticks are placed at Bias + k*Step.
type Tick struct {
	Kind     TickKind
	Azimuth  float64
	Bias     float64
	Step     float64
	Size     int
	Labelled bool
}

// Output describes the raster the simulation was run for.
type Output struct {
	File         string  `json:"file"`
	FileMetadata *string `json:"file_metadata"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Ticks        []Tick  `json:"ticks"`
	ShowEyeLevel bool    `json:"show_eye_level"`
}

// Params are the parameters the simulation was run with. Env holds the
// atmosphere description; it is kept verbatim and never interpreted here.
type Params struct {
	TerrainFolder  string          `json:"terrain_folder"`
	View           View            `json:"view"`
	Env            json.RawMessage `json:"env,omitempty"`
	StraightRays   bool            `json:"straight_rays"`
	SimulationStep float64         `json:"simulation_step"`
	Output         Output          `json:"output"`
}

// Data is a complete simulation result. It is built once and treated as
// read-only afterwards; share it by pointer.
type Data struct {
	Params Params `json:"params"`
	Grid   Grid   `json:"result"`
}

// Width returns the declared output width.
func (d *Data) Width() int { return d.Params.Output.Width }

// Height returns the declared output height.
func (d *Data) Height() int { return d.Params.Output.Height }

// Contains reports whether (x, y) lies inside the declared raster.
func (d *Data) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < d.Width() && y < d.Height()
}

// NewGrid allocates a grid of empty sample lists.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([][]Sample, width)
	}
	return g
}
