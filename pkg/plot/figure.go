package plot

import (
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// Figure accumulates artists and renders them on demand. It is not safe for
// concurrent use.
type Figure struct {
	cfg     Config
	title   string
	markers []Marker
	arrows  []Arrow
}

// NewFigure creates an empty figure. Zero fields in cfg take their defaults.
func NewFigure(cfg Config) *Figure {
	cfg.SetDefaults()
	return &Figure{cfg: cfg}
}

// Config returns the figure configuration with defaults applied.
func (f *Figure) Config() Config { return f.cfg }

// Marker adds a point marker.
func (f *Figure) Marker(m Marker) { f.markers = append(f.markers, m) }

// Arrow adds a filled arrow.
func (f *Figure) Arrow(a Arrow) { f.arrows = append(f.arrows, a) }

// SetTitle sets the text drawn above the axes.
func (f *Figure) SetTitle(title string) { f.title = title }

// Title returns the current title.
func (f *Figure) Title() string { return f.title }

// Counts returns the number of markers and arrows added so far.
func (f *Figure) Counts() (markers, arrows int) {
	return len(f.markers), len(f.arrows)
}

// Limits returns the autoscaled data limits as (xmin, xmax, ymin, ymax).
func (f *Figure) Limits() (xmin, xmax, ymin, ymax float64) {
	var xs, ys []float64
	for _, m := range f.markers {
		xs = append(xs, m.X)
		ys = append(ys, m.Y)
	}
	for _, a := range f.arrows {
		for _, p := range a.Polygon() {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	xmin, xmax = autoscale(xs)
	ymin, ymax = autoscale(ys)
	return xmin, xmax, ymin, ymax
}

// Image rasterizes the figure.
func (f *Figure) Image() (image.Image, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, err
	}
	xmin, xmax, ymin, ymax := f.Limits()
	if !finite(xmin, xmax, xmax-xmin) || !finite(ymin, ymax, ymax-ymin) {
		return nil, errors.New(errors.ErrCodeDataRange,
			"data range too large to draw: x [%g, %g], y [%g, %g]", xmin, xmax, ymin, ymax)
	}
	return f.draw()
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// EncodeJPEG rasterizes the figure and writes it to w as JPEG.
func (f *Figure) EncodeJPEG(w io.Writer) error {
	img, err := f.Image()
	if err != nil {
		return err
	}
	return WriteJPEG(w, img, f.cfg.Quality)
}

// WriteJPEG encodes img to w at the given quality.
func WriteJPEG(w io.Writer, img image.Image, quality int) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode jpeg")
	}
	return nil
}
