package stream

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/image/colornames"
	"golang.org/x/term"
	"golang.org/x/text/encoding"

	"github.com/matzehuels/splitviz/pkg/annotate"
	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/plot"
)

// Canvas receives draw calls. *plot.Figure implements it.
type Canvas interface {
	Marker(plot.Marker)
	Arrow(plot.Arrow)
}

// Drawing parameters.
const (
	watchtowerSize  = 12.0
	endpointSize    = 3.0
	endpointAlpha   = 0.5
	arrowWidth      = 0.08
	arrowAlpha      = 0.7
	watchtowerAlpha = 1.0
)

// Stats counts what a Render call consumed.
type Stats struct {
	Lines       int // all lines read
	PassThrough int // lines copied to the output
	Watchtowers int
	Edges       int
}

// Renderer turns directive lines into draw calls on a Canvas.
type Renderer struct {
	Canvas Canvas
	Logger *log.Logger

	// LineBuffered flushes each pass-through line as soon as it is written.
	// Render turns it on by itself when out is a terminal.
	LineBuffered bool
}

// NewRenderer creates a renderer drawing onto c.
// If logger is nil, log.Default() is used.
func NewRenderer(c Canvas, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{Canvas: c, Logger: logger}
}

// Render consumes in until EOF, copying pass-through lines to out and
// drawing directives. It stops at the first error; pass-through lines read
// before the error have been written to out.
func (r *Renderer) Render(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(NewDecoder(in))
	bw := bufio.NewWriter(out)

	flush := r.LineBuffered || isTerminal(out)

	err := r.render(ctx, br, bw, flush, &stats)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = errors.Wrap(errors.ErrCodeIO, ferr, "write output")
	}
	return stats, err
}

func (r *Renderer) render(ctx context.Context, br *bufio.Reader, bw *bufio.Writer, flush bool, stats *Stats) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// A line cut short by a read error is never echoed or parsed.
		line, rerr := br.ReadString('\n')
		switch {
		case rerr == nil, rerr == io.EOF:
		case stderrors.Is(rerr, encoding.ErrInvalidUTF8):
			return errors.Wrap(errors.ErrCodeInvalidEncoding, rerr, "line %d", stats.Lines+1)
		default:
			return errors.Wrap(errors.ErrCodeIO, rerr, "read input")
		}

		if line != "" {
			stats.Lines++
			if err := r.line(line, bw, flush, stats); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			return nil
		}
	}
}

func (r *Renderer) line(line string, bw *bufio.Writer, flush bool, stats *Stats) error {
	if !annotate.IsDirective(line) {
		stats.PassThrough++
		if _, err := bw.WriteString(line); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write output")
		}
		if flush {
			if err := bw.Flush(); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write output")
			}
		}
		return nil
	}

	a, err := annotate.Parse(line)
	if err != nil {
		var de *errors.DirectiveError
		if stderrors.As(err, &de) {
			de.Line = stats.Lines
		}
		return err
	}

	r.Logger.Debug("directive", "line", stats.Lines, "kind", a.Kind())
	r.Draw(a)
	switch a.(type) {
	case annotate.Watchtower:
		stats.Watchtowers++
	case annotate.Edge:
		stats.Edges++
	}
	return nil
}

// Draw issues the draw calls for a single annotation.
func (r *Renderer) Draw(a annotate.Annotation) {
	switch a := a.(type) {
	case annotate.Watchtower:
		r.Canvas.Marker(WatchtowerMarker(a))
	case annotate.Edge:
		start, end := EndpointMarkers(a)
		r.Canvas.Marker(start)
		r.Canvas.Marker(end)
		r.Canvas.Arrow(EdgeArrow(a))
	}
}

// WatchtowerMarker returns the marker drawn for w.
func WatchtowerMarker(w annotate.Watchtower) plot.Marker {
	return plot.Marker{
		X:     w.X,
		Y:     w.Y,
		Shape: plot.MarkerPoint,
		Size:  watchtowerSize,
		Face:  annotate.ColorOf(w.ID),
		Alpha: watchtowerAlpha,
		Label: strconv.Itoa(w.ID),
	}
}

// EndpointMarkers returns the dark dots drawn at both ends of e.
func EndpointMarkers(e annotate.Edge) (start, end plot.Marker) {
	dot := func(x, y float64) plot.Marker {
		return plot.Marker{
			X:         x,
			Y:         y,
			Shape:     plot.MarkerCircle,
			Size:      endpointSize,
			Face:      colornames.Black,
			Edge:      colornames.Black,
			EdgeWidth: 1,
			Alpha:     endpointAlpha,
		}
	}
	return dot(e.X1, e.Y1), dot(e.X2, e.Y2)
}

// EdgeArrow returns the arrow drawn for e. Its tip lands on the end point.
func EdgeArrow(e annotate.Edge) plot.Arrow {
	dx, dy := e.Delta()
	return plot.Arrow{
		X:                  e.X1,
		Y:                  e.Y1,
		DX:                 dx,
		DY:                 dy,
		Width:              arrowWidth,
		LengthIncludesHead: true,
		Shape:              plot.ArrowLeft,
		Face:               annotate.ColorOf(e.Face),
		Alpha:              arrowAlpha,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
