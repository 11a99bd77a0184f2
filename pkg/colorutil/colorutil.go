// Package colorutil provides shared color utilities for the panorama reader.
package colorutil

import (
	"image/color"
	"math"
)

// Common colors used throughout the application.
var (
	Background = color.RGBA{R: 28, G: 28, B: 28, A: 255} // Pixels without data
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// ToByte scales a [0, 1] channel to [0, 255], truncating toward zero.
// Out-of-range and NaN inputs saturate.
func ToByte(v float64) uint8 {
	return Truncate(v * 255)
}

// Truncate converts v to a byte by dropping the fraction, saturating at
// 0 and 255. NaN maps to 0.
func Truncate(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// HSVToRGB converts hue (degrees, any value), saturation and value (0-1) to
// 8-bit RGB. Hue is wrapped into [0, 360) before picking the 60 degree
// sector; channels are truncated.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rp, gp, bp float64
	switch {
	case h < 60:
		rp, gp, bp = c, x, 0
	case h < 120:
		rp, gp, bp = x, c, 0
	case h < 180:
		rp, gp, bp = 0, c, x
	case h < 240:
		rp, gp, bp = 0, x, c
	case h < 300:
		rp, gp, bp = x, 0, c
	default:
		rp, gp, bp = c, 0, x
	}

	return Truncate((rp + m) * 255), Truncate((gp + m) * 255), Truncate((bp + m) * 255)
}
