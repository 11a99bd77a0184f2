package result

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionMismatch = errors.New("grid dimensions do not match output size")
	ErrDistanceOrder     = errors.New("sample distances are not ordered nearest first")
	ErrColorRange        = errors.New("color component outside [0, 1]")
	ErrNoColoring        = errors.New("view has no coloring configuration")
	ErrInvalidFrame      = errors.New("invalid view frame")
)

// Validate checks the structural invariants the renderer relies on. A result
// that fails validation must not be rendered.
func (d *Data) Validate() error {
	w, h := d.Width(), d.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: declared %dx%d", ErrDimensionMismatch, w, h)
	}
	if len(d.Grid) != h {
		return fmt.Errorf("%w: %d rows, expected %d", ErrDimensionMismatch, len(d.Grid), h)
	}
	for y, row := range d.Grid {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrDimensionMismatch, y, len(row), w)
		}
	}

	if d.Params.View.Coloring == nil {
		return ErrNoColoring
	}
	if d.Params.View.Frame.FOV <= 0 {
		return fmt.Errorf("%w: fov %.3f", ErrInvalidFrame, d.Params.View.Frame.FOV)
	}

	for y, row := range d.Grid {
		for x, samples := range row {
			if err := checkSamples(samples); err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	return nil
}

func checkSamples(samples []Sample) error {
	for i, s := range samples {
		if i > 0 && s.Distance < samples[i-1].Distance {
			return fmt.Errorf("%w: entry %d at %.1f m after %.1f m",
				ErrDistanceOrder, i, s.Distance, samples[i-1].Distance)
		}
		if s.Color.Kind == ColorRGBA {
			c := s.Color.RGBA
			for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
				if v < 0 || v > 1 {
					return fmt.Errorf("%w: entry %d has %.3f", ErrColorRange, i, v)
				}
			}
		}
	}
	return nil
}
