package plot

import (
	"math"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default figure width in inches.
	DefaultWidth = 6.4

	// DefaultHeight is the default figure height in inches.
	DefaultHeight = 4.8

	// DefaultDPI is the default resolution in pixels per inch.
	DefaultDPI = 100.0

	// DefaultQuality is the default JPEG quality.
	DefaultQuality = 75

	// maxPixels bounds either image dimension.
	maxPixels = 16384
)

// Config selects the output geometry for a Figure.
type Config struct {
	Width   float64 `toml:"width"`   // inches
	Height  float64 `toml:"height"`  // inches
	DPI     float64 `toml:"dpi"`     // pixels per inch
	Quality int     `toml:"quality"` // JPEG quality, 1-100
	Legend  bool    `toml:"legend"`  // draw a legend of labelled markers
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		DPI:     DefaultDPI,
		Quality: DefaultQuality,
	}
}

// SetDefaults fills zero fields with their defaults.
func (c *Config) SetDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.DPI == 0 {
		c.DPI = DefaultDPI
	}
	if c.Quality == 0 {
		c.Quality = DefaultQuality
	}
}

// Validate checks that the configuration describes a drawable image.
func (c Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "figure size must be positive, got %gx%g", c.Width, c.Height)
	}
	if !(c.DPI > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %g", c.DPI)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "jpeg quality must be between 1 and 100, got %d", c.Quality)
	}
	w, h := c.PixelSize()
	if w < 1 || h < 1 || w > maxPixels || h > maxPixels {
		return errors.New(errors.ErrCodeInvalidConfig, "image size %dx%d out of range (1-%d)", w, h, maxPixels)
	}
	return nil
}

// PixelSize returns the image dimensions in pixels.
func (c Config) PixelSize() (int, int) {
	return int(math.Round(c.Width * c.DPI)), int(math.Round(c.Height * c.DPI))
}

// points converts a length in points to pixels.
func (c Config) points(pt float64) float64 {
	return pt * c.DPI / 72
}
