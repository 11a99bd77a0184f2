// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"panorama-reader/internal/app"
	panoimage "panorama-reader/internal/image"
	"panorama-reader/internal/resultfile"
	"panorama-reader/internal/version"
	"panorama-reader/ui/canvas"
	"panorama-reader/ui/panels"
	"panorama-reader/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	appTitle = "Panorama Reader"

	panelWidth    = 300 // Extra window width beside the panorama
	windowPadding = 10

	reloadSettle = 500 * time.Millisecond
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	canvas    *canvas.PanoramaCanvas
	panel     *panels.InspectPanel
	statusBar *widget.Label
	zoomLabel *widget.Label

	watcher *app.ResultWatcher

	// Menu items that need state tracking
	mainMenu        *fyne.MainMenu
	decorationsItem *fyne.MenuItem
	imperialItem    *fyne.MenuItem
	reloadItem      *fyne.MenuItem
}

// New creates the main window and applies stored preferences to state.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	state.Options.Imperial = p.Imperial()
	state.Decorations = p.Decorations()

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.canvas.SetZoom(p.Zoom())

	win.SetOnClosed(func() {
		mw.stopWatching()
		mw.savePrefs()
	})
	win.Resize(fyne.NewSize(800+panelWidth, 400+windowPadding))

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewPanoramaCanvas(mw.state.CurrentSelection)
	mw.canvas.OnPick(mw.onPick)
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
		mw.prefs.SetZoom(zoom)
	})

	mw.panel = panels.NewInspectPanel(mw.state)
	mw.statusBar = widget.NewLabel("Open a result file to begin")
	mw.zoomLabel = widget.NewLabel("100%")

	canvasArea := container.NewBorder(
		mw.createToolbar(),    // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		mw.canvas.Container(), // center
	)

	split := container.NewHSplit(canvasArea, mw.panel.Container())
	split.SetOffset(0.75)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		widget.NewButton("-", mw.canvas.ZoomOut),
		widget.NewButton("+", mw.canvas.ZoomIn),
		widget.NewButton("1:1", func() { mw.canvas.SetZoom(1) }),
		mw.zoomLabel,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	mw.reloadItem = fyne.NewMenuItem("Reload", mw.onReload)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Result...", mw.onOpen),
		mw.reloadItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Image...", mw.onExport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.decorationsItem = fyne.NewMenuItem("", mw.onToggleDecorations)
	mw.imperialItem = fyne.NewMenuItem("", mw.onToggleImperial)
	mw.syncToggleLabels()

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Actual Size", func() { mw.canvas.SetZoom(1) }),
		fyne.NewMenuItemSeparator(),
		mw.decorationsItem,
		mw.imperialItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Selection", mw.state.ClearSelection),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.mainMenu = fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mw.mainMenu)
}

func toggleLabel(on bool, label string) string {
	if on {
		return "✓ " + label
	}
	return "  " + label
}

func (mw *MainWindow) syncToggleLabels() {
	mw.decorationsItem.Label = toggleLabel(mw.state.Decorations, "Show Ticks and Eye Level")
	mw.imperialItem.Label = toggleLabel(mw.state.Options.Imperial, "Imperial Units")
	if mw.mainMenu != nil {
		mw.mainMenu.Refresh()
	}
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventResultLoaded, func(data interface{}) {
		path, _ := data.(string)
		mw.canvas.SetImage(mw.state.Image())
		mw.SetTitle(appTitle + " - " + filepath.Base(path))
		mw.updateStatus(fmt.Sprintf("Loaded %s (%d x %d)", path, mw.state.Data.Width(), mw.state.Data.Height()))
	})

	mw.state.On(app.EventLoadFailed, func(data interface{}) {
		if err, ok := data.(error); ok {
			mw.updateStatus("Load failed: " + err.Error())
		}
	})

	mw.state.On(app.EventDisplayChanged, func(_ interface{}) {
		mw.canvas.SetImage(mw.state.Image())
	})

	mw.state.On(app.EventSelectionChanged, func(_ interface{}) {
		mw.canvas.Refresh()
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// OpenResult loads path into the viewer and watches it for rewrites.
func (mw *MainWindow) OpenResult(path string) error {
	if err := mw.state.LoadResult(path); err != nil {
		return err
	}
	mw.prefs.SetLastDir(filepath.Dir(path))
	mw.watch(path)
	return nil
}

func (mw *MainWindow) watch(path string) {
	if abs, err := filepath.Abs(path); err == nil && mw.watcher != nil && mw.watcher.Path() == abs {
		return
	}
	mw.stopWatching()

	w, err := app.NewResultWatcher(path, reloadSettle)
	if err != nil {
		log.Printf("Watch: %v", err)
		return
	}
	w.OnChange(func() {
		log.Printf("Watch: %s changed, reloading", filepath.Base(path))
		mw.onReload()
	})
	w.Start()
	mw.watcher = w
}

func (mw *MainWindow) stopWatching() {
	if mw.watcher != nil {
		mw.watcher.Stop()
		mw.watcher = nil
	}
}

func (mw *MainWindow) savePrefs() {
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Prefs: %v", err)
	}
}

// listableDir returns dir as a dialog location, or nil.
func listableDir(dir string) fyne.ListableURI {
	if dir == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return listable
}

// Menu action handlers

func (mw *MainWindow) onPick(x, y int) {
	rec, err := mw.state.Select(x, y)
	if err != nil {
		mw.updateStatus(err.Error())
		return
	}
	mw.updateStatus(fmt.Sprintf("Pixel (%d, %d): azimuth %s, elevation %s",
		x, y, rec.AzimuthText, rec.DirElevationText))
}

func (mw *MainWindow) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		if err := mw.OpenResult(reader.URI().Path()); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{resultfile.Extension, ".json"}))
	if loc := listableDir(mw.prefs.LastDir()); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onReload() {
	if mw.state.Path == "" {
		mw.updateStatus("Nothing to reload")
		return
	}
	sel, hadSel := mw.state.CurrentSelection()
	if err := mw.state.LoadResult(mw.state.Path); err != nil {
		return
	}
	if hadSel && mw.state.Data.Contains(sel.X, sel.Y) {
		_, _ = mw.state.Select(sel.X, sel.Y)
	}
}

func (mw *MainWindow) onExport() {
	img := mw.state.Image()
	if img == nil {
		mw.updateStatus("Nothing to export")
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if _, ferr := panoimage.FormatFromPath(path); ferr != nil {
			path += ".png"
		}
		if err := panoimage.Save(path, img); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetLastExportDir(filepath.Dir(path))
		mw.updateStatus("Exported " + path)
	}, mw.Window)

	name := "panorama.png"
	if mw.state.Path != "" {
		name = strings.TrimSuffix(filepath.Base(mw.state.Path), filepath.Ext(mw.state.Path)) + ".png"
	}
	fd.SetFileName(name)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".tif", ".tiff", ".bmp"}))
	if loc := listableDir(mw.prefs.LastExportDir()); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onToggleDecorations() {
	on := !mw.state.Decorations
	mw.state.SetDecorations(on)
	mw.prefs.SetDecorations(on)
	mw.syncToggleLabels()
}

func (mw *MainWindow) onToggleImperial() {
	on := !mw.state.Options.Imperial
	mw.state.SetImperial(on)
	mw.prefs.SetImperial(on)
	mw.syncToggleLabels()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s\n\nVersion: %s\nBuild: %s\nCommit: %s\n\nInspect rendered terrain panoramas.",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

// FitToResult sizes the window to the panorama plus the side panel.
func (mw *MainWindow) FitToResult() {
	if mw.state.Data == nil {
		return
	}
	mw.Resize(fyne.NewSize(
		float32(mw.state.Data.Width()+panelWidth),
		float32(mw.state.Data.Height()+windowPadding),
	))
}
