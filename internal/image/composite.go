package image

import (
	"image/color"
	"math"

	"panorama-reader/internal/result"
	"panorama-reader/pkg/colorutil"
)

// Hypsometric tint constants.
const (
	referenceElevation = 4500.0 // Elevation ratio 1.0, meters
	snowlineRatio      = 0.7    // Above this ratio, value falls off steeply
	hueExponent        = 0.65
	distanceDarkening  = 0.6
	distanceFading     = 0.9
)

// waterBase is the water color at zero distance.
var waterBase = [2]float64{128, 255}

// Composite returns the display color of a resolved sample under the given
// view. Explicit colors pass through with alpha dropped; terrain samples are
// tinted by elevation and distance.
func Composite(view *result.View, s *result.Sample) color.RGBA {
	switch s.Color.Kind {
	case result.ColorRGBA:
		c := s.Color.RGBA
		return color.RGBA{
			R: colorutil.ToByte(c.R),
			G: colorutil.ToByte(c.G),
			B: colorutil.ToByte(c.B),
			A: 255,
		}
	default:
		return TerrainColor(view, s.Elevation, s.Distance)
	}
}

// TerrainColor computes the hypsometric tint of terrain at the given
// elevation (meters) seen from the given distance (meters).
func TerrainColor(view *result.View, elevation, distance float64) color.RGBA {
	distRatio := 0.0
	if maxDist := maxDistance(view); maxDist > 0 {
		distRatio = distance / maxDist
	}
	fade := 1 - distRatio*distanceDarkening

	if elevation <= waterLevel(view) {
		return color.RGBA{
			R: 0,
			G: colorutil.Truncate(waterBase[0] * fade),
			B: colorutil.Truncate(waterBase[1] * fade),
			A: 255,
		}
	}

	elevRatio := elevation / referenceElevation
	bend := math.Pow(math.Abs(elevRatio), hueExponent)
	if elevRatio < 0 {
		bend = -bend
	}
	h := 120 - 240*bend

	var v float64
	if elevRatio > snowlineRatio {
		v = 2.1 - elevRatio*2
	} else {
		v = 0.9 - elevRatio/snowlineRatio*0.2
	}
	v *= fade
	s := 1 - distRatio*distanceFading

	r, g, b := colorutil.HSVToRGB(h, s, v)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// maxDistance is the distance scale used for fading. The simple coloring
// carries its own; otherwise the frame's render distance applies.
func maxDistance(view *result.View) float64 {
	switch c := view.Coloring.(type) {
	case result.SimpleColoring:
		if c.MaxDistance > 0 {
			return c.MaxDistance
		}
	case result.ShadingColoring:
		// Lighting parameters are not used by this coloring path.
	}
	return view.Frame.MaxDistance
}

func waterLevel(view *result.View) float64 {
	if view.Coloring == nil {
		return 0
	}
	return view.Coloring.WaterLevel()
}
