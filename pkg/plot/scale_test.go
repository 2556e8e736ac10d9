package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAutoscale(t *testing.T) {
	tests := []struct {
		name   string
		vals   []float64
		lo, hi float64
	}{
		{"empty", nil, 0, 1},
		{"span", []float64{0, 10}, -0.5, 10.5},
		{"unordered", []float64{3, -1, 1}, -1.2, 3.2},
		{"single value", []float64{2}, 1.9 - 0.01, 2.1 + 0.01},
		{"single zero", []float64{0, 0}, -0.055, 0.055},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := autoscale(tt.vals)
			if math.Abs(lo-tt.lo) > 1e-9 || math.Abs(hi-tt.hi) > 1e-9 {
				t.Errorf("autoscale(%v) = (%v, %v), want (%v, %v)", tt.vals, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   []float64
		step   float64
	}{
		{"unit", 0, 1, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, 0.2},
		{"padded unit", -0.05, 1.05, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, 0.2},
		{"tens", -0.5, 10.5, []float64{0, 2, 4, 6, 8, 10}, 2},
		{"quarter steps", 0, 2, []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}, 0.25},
		{"negative", -3, -1, []float64{-3, -2.75, -2.5, -2.25, -2, -1.75, -1.5, -1.25, -1}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, step := ticks(tt.lo, tt.hi)
			if math.Abs(step-tt.step) > 1e-12 {
				t.Errorf("step = %v, want %v", step, tt.step)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("ticks(%v, %v) mismatch (-want +got):\n%s", tt.lo, tt.hi, diff)
			}
			if len(got)-1 > maxBins {
				t.Errorf("%d intervals, want at most %d", len(got)-1, maxBins)
			}
		})
	}
}

func TestTicksDegenerate(t *testing.T) {
	if got, _ := ticks(1, 1); got != nil {
		t.Errorf("ticks(1, 1) = %v, want nil", got)
	}
}

func TestTickLabel(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{0, 0.2, "0.0"},
		{0.6000000000000001, 0.2, "0.6"},
		{1, 0.25, "1.00"},
		{10, 2, "10"},
		{-2, 1, "−2"},
		{0.5, 0.5, "0.5"},
		{2500, 500, "2500"},
		{5e306, 5e306, "5e+306"},
		{-1.5e7, 5e6, "−1.5e+07"},
	}
	for _, tt := range tests {
		if got := tickLabel(tt.v, tt.step); got != tt.want {
			t.Errorf("tickLabel(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestTicksFarFromZero(t *testing.T) {
	// Steps near the float spacing at this magnitude must still terminate.
	got, step := ticks(1e17, 1e17+1600)
	if step != 200 {
		t.Errorf("step = %v, want 200", step)
	}
	if len(got) == 0 || len(got) > maxBins+2 {
		t.Errorf("got %d ticks, want 1..%d", len(got), maxBins+2)
	}
}
