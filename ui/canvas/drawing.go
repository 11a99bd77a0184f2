package canvas

import (
	"image"
	"image/color"
	"math"
)

const (
	CrosshairRadius = 12.0
	CrosshairArm    = 20.0
)

// DrawCrosshair draws a circle of CrosshairRadius around (cx, cy) with
// horizontal and vertical arms reaching CrosshairArm from the center.
// Pixels outside img are skipped.
func DrawCrosshair(img *image.RGBA, cx, cy float64, c color.RGBA) {
	x0, y0 := int(math.Floor(cx)), int(math.Floor(cy))
	arm := int(CrosshairArm)

	for d := -arm; d <= arm; d++ {
		setPixel(img, x0+d, y0, c)
		setPixel(img, x0, y0+d, c)
	}
	drawCircle(img, x0, y0, int(CrosshairRadius), c)
}

// drawCircle is the midpoint circle algorithm.
func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		setPixel(img, cx+x, cy+y, c)
		setPixel(img, cx+y, cy+x, c)
		setPixel(img, cx-y, cy+x, c)
		setPixel(img, cx-x, cy+y, c)
		setPixel(img, cx-x, cy-y, c)
		setPixel(img, cx-y, cy-x, c)
		setPixel(img, cx+y, cy-x, c)
		setPixel(img, cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetRGBA(x, y, c)
	}
}
