package result

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate figures about the first (visible) sample of every
// pixel. Range fields are zero when Hits is zero.
type Summary struct {
	Pixels       int
	Hits         int // Pixels with at least one sample
	Samples      int // Total samples over all lists
	Layered      int // Pixels with more than one sample
	Explicit     int // Visible samples carrying an explicit color
	MinDistance  float64
	MaxDistance  float64
	MeanDistance float64
	MinElevation float64
	MaxElevation float64
}

// Summarize computes a Summary over the grid.
func (d *Data) Summarize() Summary {
	s := Summary{Pixels: d.Width() * d.Height()}

	var dists, elevs []float64
	for _, row := range d.Grid {
		for _, samples := range row {
			s.Samples += len(samples)
			if len(samples) == 0 {
				continue
			}
			if len(samples) > 1 {
				s.Layered++
			}
			first := samples[0]
			if first.Color.Kind == ColorRGBA {
				s.Explicit++
			}
			dists = append(dists, first.Distance)
			elevs = append(elevs, first.Elevation)
		}
	}

	s.Hits = len(dists)
	if s.Hits == 0 {
		return s
	}
	s.MinDistance = floats.Min(dists)
	s.MaxDistance = floats.Max(dists)
	s.MeanDistance = stat.Mean(dists, nil)
	s.MinElevation = floats.Min(elevs)
	s.MaxElevation = floats.Max(elevs)
	return s
}
