// Package main provides the entry point for the Black Pixel Analysis Tool.
package main

import (
	"log"

	"blackpixel/internal/app"
	"blackpixel/internal/version"
	"blackpixel/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
)

const appID = "xyz.blackpixel.analyzer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Black Pixel Analysis Tool v%s", version.String())

	cfg := app.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.AnalyzerTheme{})

	appState := app.NewState(cfg)
	win := mainwindow.New(fyneApp, appState)
	win.ShowAndRun()
}
