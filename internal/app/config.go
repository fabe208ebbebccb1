package app

import (
	"fmt"

	"blackpixel/internal/analyzer"
)

// Config holds the compiled-in settings of the tool.
type Config struct {
	DefaultThreshold int     // Slider position when a blackify window opens
	PreviewMaxSize   int     // Longest side of on-screen previews, in pixels
	BlackifyWidth    float32 // Initial blackify window size
	BlackifyHeight   float32
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		DefaultThreshold: 32,
		PreviewMaxSize:   500,
		BlackifyWidth:    800,
		BlackifyHeight:   700,
	}
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.DefaultThreshold < analyzer.MinThreshold || c.DefaultThreshold > analyzer.MaxThreshold {
		return fmt.Errorf("default threshold %d outside [%d, %d]",
			c.DefaultThreshold, analyzer.MinThreshold, analyzer.MaxThreshold)
	}
	if c.PreviewMaxSize <= 0 {
		return fmt.Errorf("preview size must be positive, got %d", c.PreviewMaxSize)
	}
	if c.BlackifyWidth <= 0 || c.BlackifyHeight <= 0 {
		return fmt.Errorf("invalid blackify window size %.0fx%.0f", c.BlackifyWidth, c.BlackifyHeight)
	}
	return nil
}
