// Package inspect describes a single panorama pixel for display: the viewing
// direction it looks along and, when terrain was hit, where and how far.
package inspect

import (
	"fmt"
	"math"
)

// Unit conversion factors.
const (
	metersPerFoot = 0.304
	metersPerMile = 1609.0
	metersPerYard = 0.912

	kilometerThreshold = 1000.0 // Strictly above: report kilometers
	mileThreshold      = 805.0  // Strictly above: report miles
)

// FormatElevation formats an elevation in meters with one decimal, adding
// whole feet when imperial is set.
func FormatElevation(meters float64, imperial bool) string {
	if !imperial {
		return fmt.Sprintf("%.1f m", meters)
	}
	return fmt.Sprintf("%.1f m (%.0f ft)", meters, meters/metersPerFoot)
}

// FormatDistance formats a distance in meters as kilometers above 1000 m and
// meters otherwise. With imperial set, miles (above 805 m) or yards follow in
// parentheses.
func FormatDistance(meters float64, imperial bool) string {
	var si string
	if meters > kilometerThreshold {
		si = fmt.Sprintf("%.1f km", meters/1000)
	} else {
		si = fmt.Sprintf("%.1f m", meters)
	}
	if !imperial {
		return si
	}

	var imp string
	if meters > mileThreshold {
		imp = fmt.Sprintf("%.1f mi", meters/metersPerMile)
	} else {
		imp = fmt.Sprintf("%.1f yds", meters/metersPerYard)
	}
	return si + " (" + imp + ")"
}

// DMS splits the magnitude of an angle into whole degrees, minutes and
// seconds. Each stage truncates, so the parts never round up.
func DMS(angle float64) (degrees, minutes, seconds int) {
	a := math.Abs(angle)
	degrees = int(a)
	minutes = int((a - float64(degrees)) * 60)
	seconds = int((a - float64(degrees) - float64(minutes)/60) * 3600)
	return degrees, minutes, seconds
}

// FormatLatitude formats a latitude as D°M'S" with hemisphere letter,
// followed by the decimal value.
func FormatLatitude(lat float64) string {
	return formatCoordinate(lat, "N", "S")
}

// FormatLongitude formats a longitude as D°M'S" with hemisphere letter,
// followed by the decimal value.
func FormatLongitude(lon float64) string {
	return formatCoordinate(lon, "E", "W")
}

func formatCoordinate(v float64, positive, negative string) string {
	d, m, s := DMS(v)
	hemisphere := positive
	if v < 0 {
		hemisphere = negative
	}
	return fmt.Sprintf("%d°%d'%d\"%s (%.6f)", d, m, s, hemisphere, v)
}

// FormatAngle formats a viewing angle in degrees.
func FormatAngle(deg float64) string {
	return fmt.Sprintf("%.3f deg", deg)
}
