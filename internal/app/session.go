package app

import (
	"fmt"
	"image"

	"blackpixel/internal/analyzer"
	bpimage "blackpixel/internal/image"
)

// Session is the working state of one blackify window: the full-resolution
// source, the current threshold and the result derived from them.
// A Session is owned by a single window and is not safe for concurrent use.
type Session struct {
	Path string

	original        *analyzer.Buffer
	originalPreview image.Image
	previewMaxSize  int

	threshold        int
	processed        *analyzer.Buffer
	processedPreview image.Image
	percentage       float64
}

// NewSession loads the image at path and processes it at the configured
// default threshold.
func NewSession(path string, cfg Config) (*Session, error) {
	img, err := bpimage.Load(path)
	if err != nil {
		return nil, err
	}
	return NewSessionFromImage(path, img, cfg)
}

// NewSessionFromImage builds a session around an already decoded image.
func NewSessionFromImage(path string, img image.Image, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	original := analyzer.FromImage(img)
	if err := original.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		Path:           path,
		original:       original,
		previewMaxSize: cfg.PreviewMaxSize,
	}
	s.originalPreview = bpimage.Thumbnail(original.ToImage(), cfg.PreviewMaxSize)

	if err := s.SetThreshold(cfg.DefaultThreshold); err != nil {
		return nil, err
	}
	return s, nil
}

// SetThreshold recomputes the processed image at threshold t. On error the
// previous result is kept.
func (s *Session) SetThreshold(t int) error {
	processed, err := analyzer.Blackify(s.original, t)
	if err != nil {
		return err
	}
	percentage, err := analyzer.PercentageBlack(processed)
	if err != nil {
		return err
	}

	s.threshold = t
	s.processed = processed
	s.percentage = percentage
	s.processedPreview = bpimage.Thumbnail(processed.ToImage(), s.previewMaxSize)
	return nil
}

// Threshold returns the threshold of the current result.
func (s *Session) Threshold() int {
	return s.threshold
}

// Percentage returns the share of black pixels in the full-resolution result.
func (s *Session) Percentage() float64 {
	return s.percentage
}

// OriginalPreview returns the source scaled to the preview size.
func (s *Session) OriginalPreview() image.Image {
	return s.originalPreview
}

// ProcessedPreview returns the result scaled to the preview size.
func (s *Session) ProcessedPreview() image.Image {
	return s.processedPreview
}

// Original returns the full-resolution source buffer.
func (s *Session) Original() *analyzer.Buffer {
	return s.original
}

// Export blackifies the full-resolution source at the current threshold.
func (s *Session) Export() (*image.NRGBA, error) {
	out, err := analyzer.Blackify(s.original, s.threshold)
	if err != nil {
		return nil, err
	}
	return out.ToImage(), nil
}

// SaveTo writes the exported image to path. Paths without an extension get
// the default one; the final path is returned.
func (s *Session) SaveTo(path string) (string, error) {
	path = bpimage.WithDefaultExtension(path)
	img, err := s.Export()
	if err != nil {
		return "", err
	}
	if err := bpimage.Save(img, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// SuggestedName returns the default file name for the save dialog.
func (s *Session) SuggestedName() string {
	return bpimage.DefaultSaveName(s.Path)
}
