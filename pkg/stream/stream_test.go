package stream

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/splitviz/pkg/annotate"
	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/plot"
)

// recorder is a Canvas that keeps every draw call in order.
type recorder struct {
	calls []any
}

func (r *recorder) Marker(m plot.Marker) { r.calls = append(r.calls, m) }
func (r *recorder) Arrow(a plot.Arrow)   { r.calls = append(r.calls, a) }

func render(t *testing.T, input string) (*recorder, string, Stats, error) {
	t.Helper()
	rec := &recorder{}
	var out bytes.Buffer
	stats, err := NewRenderer(rec, nil).Render(context.Background(), strings.NewReader(input), &out)
	return rec, out.String(), stats, err
}

func TestRenderScenario(t *testing.T) {
	rec, out, stats, err := render(t, "@W3 1.0 2.0\n@E0 0.0 0.0 1.0 1.0\nhello\n")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("output = %q, want %q", out, "hello\n")
	}

	want := []any{
		plot.Marker{X: 1, Y: 2, Shape: plot.MarkerPoint, Size: 12, Face: colornames.Cyan, Alpha: 1, Label: "3"},
		plot.Marker{X: 0, Y: 0, Shape: plot.MarkerCircle, Size: 3, Face: colornames.Black, Edge: colornames.Black, EdgeWidth: 1, Alpha: 0.5},
		plot.Marker{X: 1, Y: 1, Shape: plot.MarkerCircle, Size: 3, Face: colornames.Black, Edge: colornames.Black, EdgeWidth: 1, Alpha: 0.5},
		plot.Arrow{X: 0, Y: 0, DX: 1, DY: 1, Width: 0.08, LengthIncludesHead: true, Shape: plot.ArrowLeft, Face: colornames.Orange, Alpha: 0.7},
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}

	wantStats := Stats{Lines: 3, PassThrough: 1, Watchtowers: 1, Edges: 1}
	if stats != wantStats {
		t.Errorf("stats = %+v, want %+v", stats, wantStats)
	}
}

func TestRenderPassThroughIdentity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain lines", "a\nb\nc\n", "a\nb\nc\n"},
		{"no final newline", "a\nlast", "a\nlast"},
		{"blank lines", "\n\nx\n\n", "\n\nx\n\n"},
		{"crlf kept", "one\r\ntwo\r\n", "one\r\ntwo\r\n"},
		{"leading space then marker", " @W1 0 0\n", " @W1 0 0\n"},
		{"directives removed in order", "1\n@W0 0 0\n2\n@E1 0 0 1 1\n3\n", "1\n2\n3\n"},
		{"unicode", "héllo wörld ✓\n", "héllo wörld ✓\n"},
		{"long line", strings.Repeat("x", 100000) + "\n", strings.Repeat("x", 100000) + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, _, err := render(t, tt.input)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderStripsByteOrderMark(t *testing.T) {
	rec, out, _, err := render(t, "\ufeff@W1 0 0\nok\n")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out != "ok\n" {
		t.Errorf("output = %q, want %q", out, "ok\n")
	}
	if len(rec.calls) != 1 {
		t.Errorf("got %d draw calls, want 1", len(rec.calls))
	}
}

func TestRenderStripsByteOrderMarkFromPassThrough(t *testing.T) {
	_, out, _, err := render(t, "\ufeffheader\n\ufeffkept\n")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	// Only the leading mark is dropped.
	if out != "header\n\ufeffkept\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderInvalidUTF8(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOut   string
		wantLine  string
		wantLines int
	}{
		{"whole line", "fine\n\xff\xfe broken\n", "fine\n", "line 2", 1},
		{"mid pass-through line", "ok\nhello\xff world\n", "ok\n", "line 2", 1},
		{"trailing byte of a watchtower", "@W1 2 3\xff\n", "", "line 1", 0},
		{"inside edge coordinates", "@E1 0 0 1 \xff1\n", "", "line 1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out, stats, err := render(t, tt.input)
			if !errors.Is(err, errors.ErrCodeInvalidEncoding) {
				t.Fatalf("Render() error = %v, want %v", err, errors.ErrCodeInvalidEncoding)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("error %q does not name %s", err, tt.wantLine)
			}
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if len(rec.calls) != 0 {
				t.Errorf("got %d draw calls from a badly encoded line", len(rec.calls))
			}
			if stats.Lines != tt.wantLines {
				t.Errorf("stats.Lines = %d, want %d", stats.Lines, tt.wantLines)
			}
		})
	}
}

func TestRenderMalformedDirectiveAborts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"non-numeric coordinates", "@E1 a b c d\n", 1},
		{"unknown directive", "ok\n@Q1 2 3\n", 2},
		{"bare marker", "a\nb\n@\n", 3},
		{"too few fields", "@W1 0 0\n@W2 0\n", 2},
		{"too many fields", "@E1 0 0 1 1 5\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := render(t, tt.input)
			if !errors.Is(err, errors.ErrCodeInvalidDirective) {
				t.Fatalf("Render() error = %v, want %v", err, errors.ErrCodeInvalidDirective)
			}
			var de *errors.DirectiveError
			if !stderrors.As(err, &de) {
				t.Fatalf("error %v does not carry a DirectiveError", err)
			}
			if de.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", de.Line, tt.wantLine)
			}
		})
	}
}

func TestRenderStopsAtFirstError(t *testing.T) {
	rec, out, stats, err := render(t, "before\n@W1 0 0\n@E1 a b c d\nafter\n@W2 0 0\n")
	if err == nil {
		t.Fatal("Render() error = nil, want error")
	}
	if out != "before\n" {
		t.Errorf("output = %q, want %q", out, "before\n")
	}
	if len(rec.calls) != 1 {
		t.Errorf("got %d draw calls, want 1", len(rec.calls))
	}
	if stats.Lines != 3 {
		t.Errorf("stats.Lines = %d, want 3", stats.Lines)
	}
}

func TestRenderReadError(t *testing.T) {
	in := io.MultiReader(strings.NewReader("partial\n"), iotest.ErrReader(stderrors.New("stdin closed")))
	var out bytes.Buffer
	_, err := NewRenderer(&recorder{}, nil).Render(context.Background(), in, &out)
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Render() error = %v, want %v", err, errors.ErrCodeIO)
	}
}

// chunkWriter keeps every Write call separately.
type chunkWriter struct {
	chunks []string
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.chunks = append(w.chunks, string(p))
	return len(p), nil
}

func TestRenderLineBuffered(t *testing.T) {
	input := "a\n@W1 0 0\nb\n"
	tests := []struct {
		name         string
		lineBuffered bool
		want         []string
	}{
		{"line buffered", true, []string{"a\n", "b\n"}},
		{"block buffered", false, []string{"a\nb\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w chunkWriter
			r := NewRenderer(&recorder{}, nil)
			r.LineBuffered = tt.lineBuffered
			if _, err := r.Render(context.Background(), strings.NewReader(input), &w); err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, w.chunks); diff != "" {
				t.Errorf("writes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, stderrors.New("broken pipe") }

func TestRenderWriteError(t *testing.T) {
	_, err := NewRenderer(&recorder{}, nil).Render(context.Background(), strings.NewReader("x\n"), failWriter{})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Render() error = %v, want %v", err, errors.ErrCodeIO)
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRenderer(&recorder{}, nil).Render(ctx, strings.NewReader("x\n"), io.Discard)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestRenderOntoFigure(t *testing.T) {
	fig := plot.NewFigure(plot.DefaultConfig())
	_, err := NewRenderer(fig, nil).Render(context.Background(),
		strings.NewReader("@W-1 0 0\n@E2 0 0 1 0\n@E3 1 0 1 1\n"), io.Discard)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if m, a := fig.Counts(); m != 5 || a != 2 {
		t.Errorf("Counts() = (%d, %d), want (5, 2)", m, a)
	}
}

func TestWatchtowerMarkerUncolored(t *testing.T) {
	m := WatchtowerMarker(annotate.Watchtower{ID: -1, X: 2, Y: 3})
	if m.Face != colornames.Black {
		t.Errorf("Face = %v, want black", m.Face)
	}
	if m.Label != "-1" {
		t.Errorf("Label = %q, want %q", m.Label, "-1")
	}
}

func TestEdgeArrowColorCycles(t *testing.T) {
	a := EdgeArrow(annotate.Edge{Face: 3})
	b := EdgeArrow(annotate.Edge{Face: 10})
	if a.Face != b.Face {
		t.Errorf("faces 3 and 10 drew %v and %v, want equal", a.Face, b.Face)
	}
}
