// Package main provides the entry point for the Panorama Reader viewer.
package main

import (
	"log"
	"os"

	"panorama-reader/internal/app"
	"panorama-reader/internal/version"
	"panorama-reader/ui/mainwindow"
	"panorama-reader/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appID = "io.github.panorama-reader"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String())

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.PanoramaTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := win.OpenResult(path); err != nil {
			log.Printf("Failed to load result %s: %v", path, err)
		} else {
			win.FitToResult()
		}
	}

	win.ShowAndRun()
}
