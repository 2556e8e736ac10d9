package stream

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		run  string
		want string
	}{
		{"sq1", "Part 3 Square Dataset"},
		{"irr2", "Part 3 irregular Dataset2"},
		{"sq42", "Part 3 Square Dataset2"},
		{"sq_10", "Part 3 Square Dataset10"},
		{"irregular3", "Part 3 irregular Datasetegular3"},
		{"SQ1", "Part 3 irregular Dataset"},
		{"datasq", "Part 3 Square Datasetasq"},
		{"ab", "Part 3 irregular Dataset"},
		{"", "Part 3 irregular Dataset"},
		{"ééé4", "Part 3 irregular Dataset4"},
	}
	for _, tt := range tests {
		t.Run(tt.run, func(t *testing.T) {
			if got := Title(tt.run); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.run, got, tt.want)
			}
		})
	}
}

func TestTitleClassification(t *testing.T) {
	if got := Title("sq1"); !strings.Contains(got, "Square") {
		t.Errorf("Title(sq1) = %q, want it to contain Square", got)
	}
	if got := Title("irr2"); !strings.Contains(got, "irregular") {
		t.Errorf("Title(irr2) = %q, want it to contain irregular", got)
	}
}

// The suffix drops three characters regardless of the classification
// prefix, which eats into short names. Kept for compatibility with existing
// plots.
func TestTitleSuffixQuirk(t *testing.T) {
	if got := Title("sq42"); !strings.HasSuffix(got, "Dataset2") {
		t.Errorf("Title(sq42) = %q, want suffix Dataset2", got)
	}
	if got := Title("irr"); got != "Part 3 irregular Dataset" {
		t.Errorf("Title(irr) = %q, want empty suffix", got)
	}
}

func TestOutputFile(t *testing.T) {
	for _, run := range []string{"sq1", "irr2", "a", "out/sq3", "x.jpeg"} {
		if got := OutputFile(run); got != run+".jpeg" {
			t.Errorf("OutputFile(%q) = %q, want %q", run, got, run+".jpeg")
		}
	}
}
