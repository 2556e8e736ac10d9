package plot

import (
	"math"
	"strconv"
)

const (
	// margin pads autoscaled limits on each side, as a fraction of the span.
	margin = 0.05

	// expander widens singular ranges, as a fraction of the value.
	expander = 0.05

	// maxBins caps the number of tick intervals per axis.
	maxBins = 9
)

// autoscale returns view limits covering vals.
func autoscale(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 1
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo, hi = nonsingular(lo, hi)
	delta := (hi - lo) * margin
	return lo - delta, hi + delta
}

// nonsingular widens a zero or near-zero range so it can be drawn.
func nonsingular(lo, hi float64) (float64, float64) {
	const tiny = 1e-15
	maxabs := math.Max(math.Abs(lo), math.Abs(hi))
	switch {
	case maxabs < 1e6*tiny:
		return -expander, expander
	case hi-lo <= maxabs*tiny:
		if lo == 0 && hi == 0 {
			return -expander, expander
		}
		return lo - expander*math.Abs(lo), hi + expander*math.Abs(hi)
	}
	return lo, hi
}

// tickSteps are the mantissas tried when choosing a tick interval.
var tickSteps = []float64{1, 2, 2.5, 5, 10}

// ticks returns tick positions inside [lo, hi] at a round interval giving
// at most maxBins intervals, and that interval.
func ticks(lo, hi float64) ([]float64, float64) {
	raw := (hi - lo) / maxBins
	if !(raw > 0) || math.IsInf(raw, 0) {
		return nil, 0
	}
	scale := math.Pow(10, math.Floor(math.Log10(raw)))
	step := scale * 10
	for _, s := range tickSteps {
		if s*scale >= raw*(1-1e-9) {
			step = s * scale
			break
		}
	}

	// Walk grid indices rather than summing steps: far from zero a step can
	// be smaller than the spacing of representable values.
	first := math.Ceil(lo/step - 1e-9)
	last := math.Floor(hi/step + 1e-9)
	var out []float64
	for k := first; k <= last && len(out) <= maxBins+1; k++ {
		t := k * step
		if t == 0 {
			t = 0 // drop negative zero
		}
		out = append(out, t)
	}
	return out, step
}

// tickLabel formats v with just enough decimals to tell ticks step apart.
func tickLabel(v, step float64) string {
	decimals := 0
	for decimals < 12 {
		scaled := step * math.Pow(10, float64(decimals))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6*math.Max(1, scaled) {
			break
		}
		decimals++
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if step >= 1e6 {
		s = strconv.FormatFloat(v, 'g', 4, 64)
	}
	if s[0] == '-' {
		s = "−" + s[1:]
	}
	return s
}
