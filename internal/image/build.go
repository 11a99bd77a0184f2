package image

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"panorama-reader/internal/result"
	"panorama-reader/pkg/colorutil"
)

// PixelColor returns the display color of pixel (x, y).
func PixelColor(data *result.Data, x, y int) color.RGBA {
	s, ok := Resolve(data.Grid.At(x, y))
	if !ok {
		return colorutil.Background
	}
	return Composite(&data.Params.View, s)
}

// Build renders the whole result into an RGBA image of the declared output
// size. The data must have passed result.Data.Validate.
func Build(data *result.Data) *image.RGBA {
	width, height := data.Width(), data.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Parallelize by horizontal stripes
	numWorkers := runtime.NumCPU()
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		if startY >= height {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			for y := yStart; y < yEnd; y++ {
				rowOffset := y * img.Stride
				for x := 0; x < width; x++ {
					c := PixelColor(data, x, y)
					pixOffset := rowOffset + x*4
					img.Pix[pixOffset+0] = c.R
					img.Pix[pixOffset+1] = c.G
					img.Pix[pixOffset+2] = c.B
					img.Pix[pixOffset+3] = c.A
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return img
}

// BGRX repacks an RGBA image into the 4-byte-per-pixel framebuffer layout
// used by 24-bit surfaces: blue, green, red, then an unused zero byte.
func BGRX(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := out[y*w*4 : (y+1)*w*4]
		for x := 0; x < w; x++ {
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = 0
		}
	}
	return out
}

// BuildBGRX renders the result straight into the framebuffer layout.
func BuildBGRX(data *result.Data) []byte {
	return BGRX(Build(data))
}
