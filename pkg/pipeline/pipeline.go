// Package pipeline runs a complete splitviz rendering.
//
// This package wires the stages that turn an annotation stream into an image
// so that the CLI and tests share one code path:
//
//  1. Stream: copy pass-through lines and draw directives onto a figure
//  2. Render: title the figure and rasterize it
//  3. Save: write "<run>.jpeg" to the working directory
//  4. Show: hand the image to a viewer, which may block
//
// Nothing is written when the stream fails, so a malformed directive never
// leaves a partial image behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(viewer.Window{}, logger)
//	result, err := runner.Run(ctx, pipeline.Options{RunName: "sq1"}, os.Stdin, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.OutputPath) // sq1.jpeg
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/plot"
	"github.com/matzehuels/splitviz/pkg/stream"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a run.
type Options struct {
	// RunName selects the title and the output file name.
	RunName string

	// Figure configures the plotting backend. Zero fields take defaults.
	Figure plot.Config

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateRunName(o.RunName); err != nil {
		return err
	}
	o.Figure.SetDefaults()
	if err := o.Figure.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// OutputPath returns the image path for the run.
func (o *Options) OutputPath() string {
	return stream.OutputFile(o.RunName)
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a run.
type Result struct {
	// OutputPath is the image file that was written.
	OutputPath string

	// Title is the text drawn above the plot.
	Title string

	// Stream counts the lines consumed.
	Stream stream.Stats

	// Stats contains stage timings.
	Stats Stats

	// Shown reports whether a viewer displayed the image.
	Shown bool
}

// Stats contains pipeline execution timings.
type Stats struct {
	StreamTime time.Duration
	RenderTime time.Duration
	ShowTime   time.Duration
}
