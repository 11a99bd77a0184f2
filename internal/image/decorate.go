package image

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"panorama-reader/internal/result"
	"panorama-reader/pkg/colorutil"
	"panorama-reader/pkg/geometry"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Colors of the output decorations.
var (
	TickColor     = colorutil.White
	EyeLevelColor = colorutil.Yellow
)

// labelGap is the space between a tick's end and its label baseline.
const labelGap = 2

// Decorate draws the output decorations requested by the run parameters onto
// img: the eye-level line (zero elevation) and azimuth ticks along the top
// edge. img must have the declared output size.
func Decorate(img *image.RGBA, data *result.Data) {
	m := data.Mapper()
	out := data.Params.Output

	if out.ShowEyeLevel {
		y := int(math.Round(m.ElevationToY(0)))
		drawHLine(img, y, EyeLevelColor)
	}

	for _, tick := range out.Ticks {
		for _, az := range TickAzimuths(tick, m) {
			x := int(math.Round(m.AzimuthToX(az)))
			drawVLine(img, x, tick.Size, TickColor)
			if tick.Labelled {
				drawLabel(img, x, tick.Size, strconv.FormatFloat(az, 'f', -1, 64), TickColor)
			}
		}
	}
}

// TickAzimuths lists the normalized azimuths of a tick definition that fall
// inside the mapper's field of view.
func TickAzimuths(tick result.Tick, m geometry.Mapper) []float64 {
	half := m.FOV / 2
	inView := func(az float64) bool {
		d := geometry.NormalizeAzimuth(az - m.Direction)
		if d > 180 {
			d -= 360
		}
		return d >= -half && d < half
	}

	switch tick.Kind {
	case result.TickSingle:
		az := geometry.NormalizeAzimuth(tick.Azimuth)
		if inView(az) {
			return []float64{az}
		}
		return nil
	case result.TickMultiple:
		if tick.Step <= 0 {
			return nil
		}
		var azimuths []float64
		left := m.Direction - half
		k := math.Ceil((left - tick.Bias) / tick.Step)
		for az := tick.Bias + k*tick.Step; az < m.Direction+half; az = tick.Bias + k*tick.Step {
			azimuths = append(azimuths, geometry.NormalizeAzimuth(az))
			k++
		}
		return azimuths
	}
	return nil
}

func drawHLine(img *image.RGBA, y int, col color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetRGBA(x, y, col)
	}
}

// drawVLine draws a line of the given length down from the top edge.
func drawVLine(img *image.RGBA, x, length int, col color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := b.Min.Y; y < b.Min.Y+length && y < b.Max.Y; y++ {
		img.SetRGBA(x, y, col)
	}
}

// drawLabel centers text horizontally on x, just below a tick of the given
// length.
func drawLabel(img *image.RGBA, x, tickLen int, text string, col color.RGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x-width/2, tickLen+labelGap+face.Ascent),
	}
	d.DrawString(text)
}
