// Package canvas provides the zoomable panorama view with pixel picking.
package canvas

import (
	"image"

	"panorama-reader/pkg/colorutil"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"
)

const (
	minZoom  = 0.25
	maxZoom  = 8.0
	zoomStep = 1.25
)

// SelectionFunc reports the currently selected image pixel, if any. The
// canvas asks for it on every repaint instead of keeping its own copy.
type SelectionFunc func() (image.Point, bool)

// PanoramaCanvas displays a rendered panorama and reports clicked pixels.
type PanoramaCanvas struct {
	widget.BaseWidget

	img       *image.RGBA
	selection SelectionFunc

	raster  *fynecanvas.Raster
	zoom    float64
	imgSize fyne.Size

	scroll  *zoomScroll
	content *tappableContent

	onPick       func(x, y int) // Left click inside the image, image coordinates
	onZoomChange func(zoom float64)
}

// zoomScroll wraps a scroll container but uses the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *PanoramaCanvas
}

func newZoomScroll(content fyne.CanvasObject, pc *PanoramaCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: pc}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// tappableContent wraps the raster to receive clicks.
type tappableContent struct {
	widget.BaseWidget
	canvas *PanoramaCanvas
}

func newTappableContent(pc *PanoramaCanvas) *tappableContent {
	tc := &tappableContent{canvas: pc}
	tc.ExtendBaseWidget(tc)
	return tc
}

func (tc *tappableContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tc.canvas.raster)
}

func (tc *tappableContent) MinSize() fyne.Size {
	return tc.canvas.raster.MinSize()
}

func (tc *tappableContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		tc.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		tc.canvas.ZoomOut()
	}
}

// Tapped handles left-click events.
func (tc *tappableContent) Tapped(ev *fyne.PointEvent) {
	pc := tc.canvas
	if pc.onPick == nil || pc.img == nil {
		return
	}
	x, y, ok := pc.CanvasToImage(float64(ev.Position.X), float64(ev.Position.Y))
	if !ok {
		return
	}
	pc.onPick(x, y)
}

// NewPanoramaCanvas creates an empty canvas.
func NewPanoramaCanvas(selection SelectionFunc) *PanoramaCanvas {
	pc := &PanoramaCanvas{
		selection: selection,
		zoom:      1.0,
		imgSize:   fyne.NewSize(400, 300),
	}

	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.ScaleMode = fynecanvas.ImageScalePixels
	pc.raster.SetMinSize(pc.imgSize)

	pc.content = newTappableContent(pc)
	pc.scroll = newZoomScroll(pc.content, pc)

	pc.ExtendBaseWidget(pc)
	return pc
}

// Container returns the canvas container for embedding in layouts.
func (pc *PanoramaCanvas) Container() fyne.CanvasObject {
	return pc.scroll
}

// SetImage sets the panorama to display.
func (pc *PanoramaCanvas) SetImage(img *image.RGBA) {
	pc.img = img
	pc.updateContentSize()
}

// OnPick sets the callback for clicks on the image. Coordinates are image
// pixels, always inside the image bounds.
func (pc *PanoramaCanvas) OnPick(callback func(x, y int)) {
	pc.onPick = callback
}

// OnZoomChange sets a callback for zoom changes.
func (pc *PanoramaCanvas) OnZoomChange(callback func(zoom float64)) {
	pc.onZoomChange = callback
}

// SetZoom sets the zoom level.
func (pc *PanoramaCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	pc.zoom = zoom
	pc.updateContentSize()

	if pc.onZoomChange != nil {
		pc.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (pc *PanoramaCanvas) Zoom() float64 {
	return pc.zoom
}

// ZoomIn increases the zoom level.
func (pc *PanoramaCanvas) ZoomIn() {
	pc.SetZoom(pc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (pc *PanoramaCanvas) ZoomOut() {
	pc.SetZoom(pc.zoom / zoomStep)
}

// CanvasToImage converts canvas coordinates to an image pixel. It reports
// false for positions outside the image.
func (pc *PanoramaCanvas) CanvasToImage(canvasX, canvasY float64) (x, y int, ok bool) {
	if pc.img == nil || canvasX < 0 || canvasY < 0 {
		return 0, 0, false
	}
	x = int(canvasX / pc.zoom)
	y = int(canvasY / pc.zoom)
	b := pc.img.Bounds()
	if x >= b.Dx() || y >= b.Dy() {
		return 0, 0, false
	}
	return x, y, true
}

// ImageToCanvas returns the canvas position of the center of an image pixel.
func (pc *PanoramaCanvas) ImageToCanvas(x, y int) (canvasX, canvasY float64) {
	return (float64(x) + 0.5) * pc.zoom, (float64(y) + 0.5) * pc.zoom
}

// Refresh redraws the canvas.
func (pc *PanoramaCanvas) Refresh() {
	pc.raster.Refresh()
}

func (pc *PanoramaCanvas) updateContentSize() {
	if pc.img == nil {
		pc.imgSize = fyne.NewSize(400, 300)
	} else {
		b := pc.img.Bounds()
		pc.imgSize = fyne.NewSize(float32(float64(b.Dx())*pc.zoom), float32(float64(b.Dy())*pc.zoom))
	}

	pc.raster.SetMinSize(pc.imgSize)
	pc.raster.Resize(pc.imgSize)
	if pc.content != nil {
		pc.content.Resize(pc.imgSize)
		pc.content.Refresh()
	}
	pc.raster.Refresh()
	if pc.scroll != nil {
		pc.scroll.Refresh()
	}
}

// draw is the raster drawing function.
func (pc *PanoramaCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(output, output.Bounds(), image.NewUniform(colorutil.Background), image.Point{}, xdraw.Src)

	if pc.img == nil {
		return output
	}

	b := pc.img.Bounds()
	dst := image.Rect(0, 0, int(float64(b.Dx())*pc.zoom), int(float64(b.Dy())*pc.zoom))
	xdraw.NearestNeighbor.Scale(output, dst, pc.img, b, xdraw.Src, nil)

	if pc.selection != nil {
		if p, ok := pc.selection(); ok {
			cx, cy := pc.ImageToCanvas(p.X, p.Y)
			DrawCrosshair(output, cx, cy, colorutil.White)
		}
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (pc *PanoramaCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.scroll)
}
