package pipeline

import (
	"strings"
	"testing"

	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/plot"
)

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{RunName: "sq1"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Figure != plot.DefaultConfig() {
		t.Errorf("Figure = %+v, want defaults", opts.Figure)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error: %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing run name", Options{}, errors.ErrCodeInvalidArgument},
		{"control character", Options{RunName: "sq\n1"}, errors.ErrCodeInvalidArgument},
		{"too long", Options{RunName: strings.Repeat("s", 300)}, errors.ErrCodeInvalidArgument},
		{"bad quality", Options{RunName: "sq1", Figure: plot.Config{Quality: 120}}, errors.ErrCodeInvalidConfig},
		{"negative dpi", Options{RunName: "sq1", Figure: plot.Config{DPI: -10}}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	for _, run := range []string{"sq1", "irr2", "a"} {
		opts := Options{RunName: run}
		if got := opts.OutputPath(); got != run+".jpeg" {
			t.Errorf("OutputPath() = %q, want %q", got, run+".jpeg")
		}
	}
}
