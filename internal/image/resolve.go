// Package image turns a panorama result into a raster: it picks the visible
// sample of each pixel, tints it and assembles the final buffer.
package image

import "panorama-reader/internal/result"

// Resolve returns the sample displayed for a pixel: the nearest one, which is
// the first in the list. It returns false for an empty list.
//
// Later entries are kept in the result for layered rendering and do not
// influence the displayed color.
func Resolve(samples []result.Sample) (*result.Sample, bool) {
	if len(samples) == 0 {
		return nil, false
	}
	return &samples[0], true
}
