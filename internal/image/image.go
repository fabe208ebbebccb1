// Package image provides image loading, thumbnailing and saving.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DefaultSaveExtension is appended to save paths that carry no extension.
const DefaultSaveExtension = ".png"

// ErrUnsupportedFormat is returned when a file extension maps to no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Thumbnail scales img down so that neither side exceeds maxSize, keeping
// the aspect ratio. Images already within bounds are copied unscaled.
func Thumbnail(img image.Image, maxSize int) *image.NRGBA {
	return imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
}

// Save writes img to path in the format implied by its extension.
func Save(img image.Image, path string) error {
	if _, err := formatFor(path); err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// WithDefaultExtension appends DefaultSaveExtension when path has none.
func WithDefaultExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultSaveExtension
	}
	return path
}

// DefaultSaveName derives a save file name from the source path, e.g.
// "scan.jpg" becomes "scan_blackified.png".
func DefaultSaveName(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "image"
	}
	return base + "_blackified" + DefaultSaveExtension
}

func formatFor(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w %q, use one of %s", ErrUnsupportedFormat, filepath.Ext(path),
			strings.Join(SaveExtensions(), " "))
	}
	return format, nil
}

// OpenExtensions returns the extensions offered by the open dialog.
func OpenExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff"}
}

// SaveExtensions returns the extensions Save can encode.
func SaveExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff"}
}

// IsSupportedFormat checks if the given path has an openable image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range OpenExtensions() {
		if ext == format {
			return true
		}
	}
	return false
}

// FileFilter returns a file filter description for use in file dialogs.
func FileFilter() string {
	return "Image files (*.png *.jpg *.jpeg *.bmp *.gif *.tiff)"
}
