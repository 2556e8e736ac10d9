package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/observability"
	"github.com/matzehuels/splitviz/pkg/plot"
	"github.com/matzehuels/splitviz/pkg/stream"
)

// Viewer displays the finished image. viewer.Window implements it.
type Viewer interface {
	Show(ctx context.Context, title string, img image.Image) error
}

// Runner encapsulates run execution.
//
// The Runner holds no per-run state; the viewer decides whether Run blocks
// after the image is saved.
type Runner struct {
	Viewer Viewer
	Logger *log.Logger
}

// NewRunner creates a runner with the given viewer.
// If v is nil, nothing is displayed.
// If logger is nil, log.Default() is used.
func NewRunner(v Viewer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Viewer: v, Logger: logger}
}

// Run streams in to out while drawing directives, then saves and shows the
// figure.
func (r *Runner) Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		OutputPath: opts.OutputPath(),
		Title:      stream.Title(opts.RunName),
	}

	hooks := observability.Pipeline()

	// Stage 1: Stream
	hooks.OnStreamStart(ctx, opts.RunName)
	streamStart := time.Now()
	fig := plot.NewFigure(opts.Figure)
	stats, err := stream.NewRenderer(fig, opts.Logger).Render(ctx, in, out)
	result.Stats.StreamTime = time.Since(streamStart)
	hooks.OnStreamComplete(ctx, opts.RunName, stats.Lines, stats.Watchtowers+stats.Edges, result.Stats.StreamTime, err)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	result.Stream = stats

	opts.Logger.Info("read stream",
		"lines", stats.Lines,
		"watchtowers", stats.Watchtowers,
		"edges", stats.Edges,
		"duration", result.Stats.StreamTime)

	// Stage 2: Render and save
	renderStart := time.Now()
	fig.SetTitle(result.Title)
	img, err := r.save(fig, result.OutputPath)
	result.Stats.RenderTime = time.Since(renderStart)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.RunName, "", result.Stats.RenderTime, err)
		return nil, fmt.Errorf("render: %w", err)
	}
	hooks.OnRenderComplete(ctx, opts.RunName, result.OutputPath, result.Stats.RenderTime, nil)

	opts.Logger.Info("saved image",
		"path", result.OutputPath,
		"size", img.Bounds().Size(),
		"duration", result.Stats.RenderTime)

	// Stage 3: Show
	if r.Viewer == nil {
		return result, nil
	}
	showStart := time.Now()
	err = r.Viewer.Show(ctx, result.Title, img)
	result.Stats.ShowTime = time.Since(showStart)
	switch {
	case errors.Is(err, errors.ErrCodeUnsupported):
		opts.Logger.Warn("cannot display image", "err", errors.UserMessage(err))
		err = nil
	case err == nil:
		result.Shown = true
	}
	hooks.OnShowComplete(ctx, opts.RunName, result.Shown, result.Stats.ShowTime, err)
	if err != nil {
		return result, fmt.Errorf("show: %w", err)
	}
	return result, nil
}

// save rasterizes fig and writes it to path as JPEG.
func (r *Runner) save(fig *plot.Figure, path string) (image.Image, error) {
	img, err := fig.Image()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := plot.WriteJPEG(&buf, img, fig.Config().Quality); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return img, nil
}
