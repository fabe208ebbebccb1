// Package dialogs provides application dialogs and secondary windows.
package dialogs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"blackpixel/internal/analyzer"
	"blackpixel/internal/app"
	bpimage "blackpixel/internal/image"
	"blackpixel/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BlackifyWindow shows an image next to its blackified version and lets the
// user tune the threshold and save the result. Each window owns its session.
type BlackifyWindow struct {
	fyne.Window
	state   *app.State
	session *app.Session

	original       *canvas.ImagePane
	processed      *canvas.ImagePane
	thresholdLabel *widget.Label
	percentLabel   *widget.Label
	slider         *widget.Slider
	saveBtn        *widget.Button
}

// NewBlackifyWindow creates the window for session; call Show to display it.
func NewBlackifyWindow(fyneApp fyne.App, state *app.State, session *app.Session) *BlackifyWindow {
	win := fyneApp.NewWindow("Blackify Pixels - " + filepath.Base(session.Path))

	w := &BlackifyWindow{
		Window:  win,
		state:   state,
		session: session,
	}
	w.setupUI()
	w.Resize(fyne.NewSize(state.Config.BlackifyWidth, state.Config.BlackifyHeight))
	w.SetOnClosed(func() {
		log.Printf("Blackify: closed %s", filepath.Base(session.Path))
	})
	return w
}

func (w *BlackifyWindow) setupUI() {
	size := float32(w.state.Config.PreviewMaxSize)
	w.original = canvas.NewImagePane("Original Image", size)
	w.original.SetImage(w.session.OriginalPreview())
	w.processed = canvas.NewImagePane("Processed Image", size)

	w.thresholdLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	w.percentLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	// Value is set before OnChanged so construction does not recompute twice
	w.slider = widget.NewSlider(analyzer.MinThreshold, analyzer.MaxThreshold)
	w.slider.Step = 1
	w.slider.Value = float64(w.session.Threshold())
	w.slider.OnChanged = func(v float64) {
		w.onThresholdChanged(int(v))
	}

	w.saveBtn = widget.NewButtonWithIcon("Save Processed Image", theme.DocumentSaveIcon(), w.onSave)

	w.refresh()

	previews := container.NewGridWithColumns(2,
		w.original.Container(),
		w.processed.Container(),
	)
	controls := container.NewVBox(
		w.thresholdLabel,
		w.percentLabel,
		container.NewPadded(w.slider),
		container.NewCenter(w.saveBtn),
	)

	w.SetContent(container.NewBorder(
		container.NewPadded(previews), // top
		nil,                           // bottom
		nil,                           // left
		nil,                           // right
		controls,                      // center
	))
}

// onThresholdChanged recomputes the result before returning, so the next
// slider event always sees the current image.
func (w *BlackifyWindow) onThresholdChanged(threshold int) {
	if err := w.session.SetThreshold(threshold); err != nil {
		log.Printf("Blackify: threshold %d: %v", threshold, err)
		dialog.ShowError(err, w.Window)
		return
	}
	w.refresh()
}

// refresh syncs labels and the processed preview with the session.
func (w *BlackifyWindow) refresh() {
	w.thresholdLabel.SetText(fmt.Sprintf("Threshold: %d", w.session.Threshold()))
	w.percentLabel.SetText("Black Pixel Percentage: " + analyzer.FormatPercentage(w.session.Percentage()))
	w.processed.SetImage(w.session.ProcessedPreview())
}

func (w *BlackifyWindow) onSave() {
	fd := dialog.NewFileSave(w.onSaveChosen, w.Window)

	fd.SetFileName(w.session.SuggestedName())
	fd.SetFilter(storage.NewExtensionFileFilter(bpimage.SaveExtensions()))
	if loc := lastDirLister(w.state); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// onSaveChosen handles the save dialog result. A nil writer is a cancel.
func (w *BlackifyWindow) onSaveChosen(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		dialog.ShowError(err, w.Window)
		return
	}
	if writer == nil {
		return
	}
	writer.Close()
	path := writer.URI().Path()
	if path == "" {
		return
	}
	// The dialog has already created the target; SaveTo may write elsewhere
	if filepath.Ext(path) == "" {
		_ = os.Remove(path)
	}
	w.saveTo(path)
}

// saveTo writes the full-resolution result at the current threshold.
func (w *BlackifyWindow) saveTo(path string) {
	saved, err := w.session.SaveTo(path)
	if err != nil {
		log.Printf("Blackify: save failed: %v", err)
		_ = os.Remove(path)
		dialog.ShowError(err, w.Window)
		return
	}
	w.state.ImageSaved(saved, w.session.Threshold())
	dialog.ShowInformation("Save Successful", "Image saved to "+saved, w.Window)
}

// lastDirLister returns the last used directory as a ListableURI, or nil.
func lastDirLister(state *app.State) fyne.ListableURI {
	dir := state.LastDir()
	if dir == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return listable
}
