// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"blackpixel/internal/analyzer"
	"blackpixel/internal/app"
	bpimage "blackpixel/internal/image"
	"blackpixel/internal/version"
	"blackpixel/ui/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Black Pixel Analysis Tool"

// MainWindow is the primary application window: the main menu.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	statusBar *widget.Label

	percentageBtn *widget.Button
	blackifyBtn   *widget.Button
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.SetMaster()

	return mw
}

// setupUI creates the main menu layout.
func (mw *MainWindow) setupUI() {
	heading := widget.NewLabelWithStyle("Black Pixel Analysis Options", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	mw.percentageBtn = widget.NewButtonWithIcon("Option 1: Calculate Black Pixel Percentage",
		theme.InfoIcon(), mw.onPercentage)
	mw.blackifyBtn = widget.NewButtonWithIcon("Option 2: Blackify Pixels",
		theme.ColorPaletteIcon(), mw.onBlackify)

	hint := widget.NewLabelWithStyle(bpimage.FileFilter(), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	mw.statusBar = widget.NewLabel("Ready")

	menu := container.NewVBox(
		heading,
		mw.percentageBtn,
		mw.blackifyBtn,
		hint,
	)

	mw.SetContent(container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		container.NewPadded(menu),         // center
	))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Calculate Black Pixel Percentage...", mw.onPercentage),
		fyne.NewMenuItem("Blackify Pixels...", mw.onBlackify),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventPercentageComputed, func(data interface{}) {
		if result, ok := data.(app.AnalysisResult); ok {
			mw.updateStatus(fmt.Sprintf("%s: %s black",
				filepath.Base(result.Path), analyzer.FormatPercentage(result.Percentage)))
		}
	})

	mw.state.On(app.EventBlackifyOpened, func(data interface{}) {
		if session, ok := data.(*app.Session); ok {
			mw.updateStatus("Blackifying " + filepath.Base(session.Path))
		}
	})

	mw.state.On(app.EventImageSaved, func(data interface{}) {
		if saved, ok := data.(app.SavedImage); ok {
			mw.updateStatus(fmt.Sprintf("Saved %s (threshold %d)", filepath.Base(saved.Path), saved.Threshold))
		}
	})

	mw.state.On(app.EventLoadFailed, func(data interface{}) {
		if failed, ok := data.(app.LoadError); ok {
			mw.updateStatus("Failed to load " + filepath.Base(failed.Path))
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// Menu action handlers

func (mw *MainWindow) onPercentage() {
	dialogs.ShowImageOpen(mw.Window, mw.state, mw.showPercentage)
}

func (mw *MainWindow) onBlackify() {
	dialogs.ShowImageOpen(mw.Window, mw.state, func(path string) { mw.openBlackify(path) })
}

// showPercentage runs the percentage flow for path and reports the result.
func (mw *MainWindow) showPercentage(path string) {
	result, err := mw.state.AnalyzeFile(path)
	if err != nil {
		dialogs.ShowLoadError(path, err, mw.Window)
		return
	}
	dialogs.ShowPercentage(result, mw.Window)
}

// openBlackify opens a blackify window for path. The window lives on after
// the main menu regains focus.
func (mw *MainWindow) openBlackify(path string) *dialogs.BlackifyWindow {
	session, err := mw.state.OpenSession(path)
	if err != nil {
		dialogs.ShowLoadError(path, err, mw.Window)
		return nil
	}
	win := dialogs.NewBlackifyWindow(mw.app, mw.state, session)
	win.Show()
	return win
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Measures pure-black pixels and blackifies near-black ones.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
