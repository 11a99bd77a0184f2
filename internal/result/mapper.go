package result

import "panorama-reader/pkg/geometry"

// Mapper returns the pixel/angle mapping for this result's output raster.
func (d *Data) Mapper() geometry.Mapper {
	f := d.Params.View.Frame
	return geometry.Mapper{
		Width:     d.Width(),
		Height:    d.Height(),
		Direction: f.Direction,
		Tilt:      f.Tilt,
		FOV:       f.FOV,
	}
}
