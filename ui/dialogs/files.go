package dialogs

import (
	"fmt"
	"path/filepath"

	"blackpixel/internal/app"
	bpimage "blackpixel/internal/image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// ShowImageOpen asks for an image file and passes its path to onPath.
// Cancelling the dialog does nothing.
func ShowImageOpen(win fyne.Window, state *app.State, onPath func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return
		}
		reader.Close()
		openChosen(win, reader.URI().Path(), onPath)
	}, win)

	fd.SetFilter(storage.NewExtensionFileFilter(bpimage.OpenExtensions()))
	if loc := lastDirLister(state); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// openChosen passes path on when it names a format the tool can decode and
// reports the rejection otherwise.
func openChosen(win fyne.Window, path string, onPath func(path string)) bool {
	if !bpimage.IsSupportedFormat(path) {
		ShowLoadError(path, fmt.Errorf("%w: %q", bpimage.ErrUnsupportedFormat, filepath.Ext(path)), win)
		return false
	}
	onPath(path)
	return true
}

// ShowPercentage displays the outcome of the percentage flow.
func ShowPercentage(result app.AnalysisResult, win fyne.Window) {
	dialog.ShowInformation("Result", result.Message(), win)
}

// ShowLoadError reports an image that could not be opened or analyzed.
func ShowLoadError(path string, err error, win fyne.Window) {
	dialog.ShowError(fmt.Errorf("could not process %s: %w", filepath.Base(path), err), win)
}
