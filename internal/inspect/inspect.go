package inspect

import (
	panoimage "panorama-reader/internal/image"
	"panorama-reader/internal/result"
)

// None is shown in place of every terrain field when a pixel has no data.
const None = "none"

// Options control how a Record is formatted.
type Options struct {
	Imperial bool // Add feet, miles and yards next to metric values
}

// DefaultOptions shows both metric and imperial units.
func DefaultOptions() Options {
	return Options{Imperial: true}
}

// Record is the description of one pixel. Azimuth and Elevation (the viewing
// direction) are always set; the remaining text fields read None when
// HasSample is false.
type Record struct {
	X, Y int

	Azimuth      float64 // degrees, [0, 360)
	DirElevation float64 // degrees

	HasSample bool
	Sample    result.Sample // Nearest sample, valid when HasSample

	AzimuthText      string
	DirElevationText string
	ElevationText    string
	DistanceText     string
	LatitudeText     string
	LongitudeText    string
}

// Inspect describes pixel (x, y) of data. The caller must ensure the pixel
// lies inside the declared raster (see result.Data.Contains).
func Inspect(data *result.Data, x, y int, opts Options) Record {
	az, el := data.Mapper().AzimuthElevation(x, y)
	rec := Record{
		X:                x,
		Y:                y,
		Azimuth:          az,
		DirElevation:     el,
		AzimuthText:      FormatAngle(az),
		DirElevationText: FormatAngle(el),
		ElevationText:    None,
		DistanceText:     None,
		LatitudeText:     None,
		LongitudeText:    None,
	}

	s, ok := panoimage.Resolve(data.Grid.At(x, y))
	if !ok {
		return rec
	}
	rec.HasSample = true
	rec.Sample = *s
	rec.ElevationText = FormatElevation(s.Elevation, opts.Imperial)
	rec.DistanceText = FormatDistance(s.Distance, opts.Imperial)
	rec.LatitudeText = FormatLatitude(s.Latitude)
	rec.LongitudeText = FormatLongitude(s.Longitude)
	return rec
}

// Lines returns the record as labelled display lines, terrain data first and
// viewing direction last.
func (r Record) Lines() []string {
	return []string{
		"Elevation: " + r.ElevationText,
		"Distance: " + r.DistanceText,
		"Latitude: " + r.LatitudeText,
		"Longitude: " + r.LongitudeText,
		"Elevation: " + r.DirElevationText,
		"Azimuth: " + r.AzimuthText,
	}
}

// Empty returns the placeholder record shown before any pixel is picked.
func Empty() Record {
	return Record{
		AzimuthText:      None,
		DirElevationText: None,
		ElevationText:    None,
		DistanceText:     None,
		LatitudeText:     None,
		LongitudeText:    None,
	}
}
