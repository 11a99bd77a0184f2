// Package geometry converts between output pixels and viewing angles.
package geometry

import "math"

// Mapper maps pixels of a width x height panorama to azimuth and elevation.
// The angular step per pixel is FOV/Width on both axes, so the vertical
// extent of a non-square image is Height*FOV/Width degrees.
type Mapper struct {
	Width     int
	Height    int
	Direction float64 // Azimuth at the image center, degrees
	Tilt      float64 // Elevation at the image center, degrees
	FOV       float64 // Horizontal field of view, degrees
}

// Step returns the angular size of one pixel in degrees.
func (m Mapper) Step() float64 {
	return m.FOV / float64(m.Width)
}

// AzimuthElevation returns the viewing angles of pixel (x, y) in degrees.
// Azimuth is normalized into [0, 360); elevation is not wrapped.
func (m Mapper) AzimuthElevation(x, y int) (azimuth, elevation float64) {
	dx := float64(x) - float64(m.Width)/2
	dy := float64(m.Height)/2 - float64(y)
	step := m.Step()

	azimuth = m.Direction + dx*step
	if azimuth < 0 {
		azimuth += 360
	}
	if azimuth >= 360 {
		azimuth -= 360
	}
	elevation = m.Tilt + dy*step
	return azimuth, elevation
}

// AzimuthToX returns the (fractional) pixel column showing the given
// azimuth. The result may fall outside [0, Width) for azimuths out of view.
func (m Mapper) AzimuthToX(azimuth float64) float64 {
	d := NormalizeAzimuth(azimuth - m.Direction)
	if d > 180 {
		d -= 360
	}
	return float64(m.Width)/2 + d/m.Step()
}

// ElevationToY returns the (fractional) pixel row showing the given
// elevation angle.
func (m Mapper) ElevationToY(elevation float64) float64 {
	return float64(m.Height)/2 - (elevation-m.Tilt)/m.Step()
}

// NormalizeAzimuth folds any angle into [0, 360).
func NormalizeAzimuth(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}
