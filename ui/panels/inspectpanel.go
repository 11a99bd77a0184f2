// Package panels provides UI panels for the application.
package panels

import (
	"fmt"

	"panorama-reader/internal/app"
	"panorama-reader/internal/inspect"
	"panorama-reader/internal/result"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

const panelTitle = "Data of clicked pixel:"

// InspectPanel shows the inspection record of the selected pixel and a short
// description of the loaded result.
type InspectPanel struct {
	state     *app.State
	container fyne.CanvasObject

	pixelLabel *widget.Label
	lines      []*widget.Label // One per inspect.Record.Lines entry

	resultLabel *widget.Label
}

// NewInspectPanel creates the panel and subscribes it to state events.
func NewInspectPanel(state *app.State) *InspectPanel {
	ip := &InspectPanel{state: state}

	title := widget.NewLabelWithStyle(panelTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ip.pixelLabel = widget.NewLabel("")

	empty := inspect.Empty().Lines()
	ip.lines = make([]*widget.Label, len(empty))
	for i, text := range empty {
		ip.lines[i] = widget.NewLabel(text)
	}

	terrain := container.NewVBox()
	for _, l := range ip.lines[:4] {
		terrain.Add(l)
	}
	direction := container.NewVBox(
		widget.NewLabelWithStyle("Direction:", fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
	)
	for _, l := range ip.lines[4:] {
		direction.Add(l)
	}

	ip.resultLabel = widget.NewLabel("No result loaded")
	ip.resultLabel.Wrapping = fyne.TextWrapWord

	ip.container = container.NewVScroll(container.NewVBox(
		title,
		ip.pixelLabel,
		terrain,
		widget.NewSeparator(),
		direction,
		widget.NewSeparator(),
		widget.NewCard("Result", "", ip.resultLabel),
	))

	state.On(app.EventSelectionChanged, func(data interface{}) {
		if rec, ok := data.(inspect.Record); ok {
			ip.Update(rec)
		}
	})
	state.On(app.EventResultLoaded, func(_ interface{}) {
		ip.Update(inspect.Empty())
		ip.showResult(state.Data)
	})

	return ip
}

// Container returns the panel for embedding in layouts.
func (ip *InspectPanel) Container() fyne.CanvasObject {
	return ip.container
}

// Update shows rec. The empty record clears the pixel coordinates.
func (ip *InspectPanel) Update(rec inspect.Record) {
	if rec == inspect.Empty() {
		ip.pixelLabel.SetText("")
	} else {
		ip.pixelLabel.SetText(fmt.Sprintf("Pixel (%d, %d)", rec.X, rec.Y))
	}
	for i, text := range rec.Lines() {
		ip.lines[i].SetText(text)
	}
}

// Text returns the currently displayed lines.
func (ip *InspectPanel) Text() []string {
	out := make([]string, len(ip.lines))
	for i, l := range ip.lines {
		out[i] = l.Text
	}
	return out
}

func (ip *InspectPanel) showResult(data *result.Data) {
	if data == nil {
		ip.resultLabel.SetText("No result loaded")
		return
	}
	sum := data.Summarize()
	v := data.Params.View
	ip.resultLabel.SetText(fmt.Sprintf(
		"%d x %d px, %s hits\nDirection %.1f, tilt %.1f, FOV %.1f\nMax distance %s",
		data.Width(), data.Height(), humanize.Comma(int64(sum.Hits)),
		v.Frame.Direction, v.Frame.Tilt, v.Frame.FOV,
		inspect.FormatDistance(v.Frame.MaxDistance, ip.state.Options.Imperial),
	))
}
