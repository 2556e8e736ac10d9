package plot

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// Text sizes in points.
const (
	tickFontSize   = 10
	titleFontSize  = 12
	legendFontSize = 10
)

// Parsed once on first use.
var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// fontFace returns a Go Regular face of the given size in points at dpi.
func fontFace(size, dpi float64) (font.Face, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, regularErr, "parse embedded font")
	}
	return truetype.NewFace(regular, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
