package plot

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Axes placement as fractions of the figure, measured from the bottom left.
const (
	axesLeft   = 0.125
	axesRight  = 0.9
	axesBottom = 0.11
	axesTop    = 0.88
)

// Decoration sizes in points.
const (
	frameWidth  = 0.8
	tickLength  = 3.5
	tickPad     = 3.5
	titlePad    = 6.0
	legendPad   = 4.0
	legendInset = 8.0
)

// transform maps data coordinates into the axes box in pixel space.
type transform struct {
	x0, x1, y0, y1 float64 // data limits
	left, right    float64 // pixel columns
	top, bottom    float64 // pixel rows
}

func (t transform) apply(x, y float64) (float64, float64) {
	px := t.left + (x-t.x0)/(t.x1-t.x0)*(t.right-t.left)
	py := t.bottom - (y-t.y0)/(t.y1-t.y0)*(t.bottom-t.top)
	return px, py
}

func (f *Figure) transform() transform {
	w, h := f.cfg.PixelSize()
	x0, x1, y0, y1 := f.Limits()
	return transform{
		x0: x0, x1: x1, y0: y0, y1: y1,
		left:   axesLeft * float64(w),
		right:  axesRight * float64(w),
		top:    (1 - axesTop) * float64(h),
		bottom: (1 - axesBottom) * float64(h),
	}
}

func (f *Figure) draw() (image.Image, error) {
	w, h := f.cfg.PixelSize()
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	t := f.transform()

	// Artists are clipped to the axes box.
	dc.DrawRectangle(t.left, t.top, t.right-t.left, t.bottom-t.top)
	dc.Clip()
	for _, a := range f.arrows {
		f.drawArrow(dc, t, a)
	}
	for _, m := range f.markers {
		f.drawMarker(dc, t, m)
	}
	dc.ResetClip()

	if err := f.drawAxes(dc, t); err != nil {
		return nil, err
	}
	if err := f.drawTitle(dc, t); err != nil {
		return nil, err
	}
	if f.cfg.Legend {
		if err := f.drawLegend(dc, t); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

func (f *Figure) drawArrow(dc *gg.Context, t transform, a Arrow) {
	poly := a.Polygon()
	if len(poly) == 0 {
		return
	}
	dc.NewSubPath()
	for i, p := range poly {
		x, y := t.apply(p.X, p.Y)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(withAlpha(a.Face, a.Alpha))
	dc.Fill()
}

func (f *Figure) drawMarker(dc *gg.Context, t transform, m Marker) {
	x, y := t.apply(m.X, m.Y)
	f.drawMarkerAt(dc, x, y, m)
}

func (f *Figure) drawMarkerAt(dc *gg.Context, x, y float64, m Marker) {
	r := f.cfg.points(m.diameter()) / 2
	dc.DrawCircle(x, y, r)
	dc.SetColor(withAlpha(m.Face, m.Alpha))
	if m.Edge != nil && m.EdgeWidth > 0 {
		dc.FillPreserve()
		dc.SetColor(withAlpha(m.Edge, m.Alpha))
		dc.SetLineWidth(f.cfg.points(m.EdgeWidth))
		dc.Stroke()
		return
	}
	dc.Fill()
}

func (f *Figure) drawAxes(dc *gg.Context, t transform) error {
	face, err := fontFace(tickFontSize, f.cfg.DPI)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.SetLineWidth(f.cfg.points(frameWidth))

	tl := f.cfg.points(tickLength)
	pad := f.cfg.points(tickPad)

	xt, xstep := ticks(t.x0, t.x1)
	for _, v := range xt {
		x, _ := t.apply(v, t.y0)
		dc.DrawLine(x, t.bottom, x, t.bottom+tl)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(v, xstep), x, t.bottom+tl+pad, 0.5, 1)
	}

	yt, ystep := ticks(t.y0, t.y1)
	for _, v := range yt {
		_, y := t.apply(t.x0, v)
		dc.DrawLine(t.left-tl, y, t.left, y)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(v, ystep), t.left-tl-pad, y, 1, 0.5)
	}

	dc.DrawRectangle(t.left, t.top, t.right-t.left, t.bottom-t.top)
	dc.Stroke()
	return nil
}

func (f *Figure) drawTitle(dc *gg.Context, t transform) error {
	if f.title == "" {
		return nil
	}
	face, err := fontFace(titleFontSize, f.cfg.DPI)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(f.title, (t.left+t.right)/2, t.top-f.cfg.points(titlePad), 0.5, 0)
	return nil
}

// legendEntries returns the first marker for each distinct label, in order.
func (f *Figure) legendEntries() []Marker {
	seen := make(map[string]bool)
	var out []Marker
	for _, m := range f.markers {
		if m.Label == "" || seen[m.Label] {
			continue
		}
		seen[m.Label] = true
		out = append(out, m)
	}
	return out
}

func (f *Figure) drawLegend(dc *gg.Context, t transform) error {
	entries := f.legendEntries()
	if len(entries) == 0 {
		return nil
	}
	face, err := fontFace(legendFontSize, f.cfg.DPI)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	pad := f.cfg.points(legendPad)
	swatch := f.cfg.points(legendFontSize)
	rowH := f.cfg.points(legendFontSize * 1.4)

	var textW float64
	for _, m := range entries {
		w, _ := dc.MeasureString(m.Label)
		textW = math.Max(textW, w)
	}
	boxW := pad + swatch + pad + textW + pad
	boxH := pad + rowH*float64(len(entries)) + pad
	x := t.right - f.cfg.points(legendInset) - boxW
	y := t.top + f.cfg.points(legendInset)

	dc.DrawRectangle(x, y, boxW, boxH)
	dc.SetColor(color.NRGBA{0xff, 0xff, 0xff, 0xcc})
	dc.FillPreserve()
	dc.SetColor(color.NRGBA{0xcc, 0xcc, 0xcc, 0xff})
	dc.SetLineWidth(f.cfg.points(frameWidth))
	dc.Stroke()

	for i, m := range entries {
		cy := y + pad + rowH*(float64(i)+0.5)
		f.drawMarkerAt(dc, x+pad+swatch/2, cy, m)
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(m.Label, x+pad+swatch+pad, cy, 0, 0.35)
	}
	return nil
}

// withAlpha returns c with its opacity scaled by alpha.
func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = math.Max(0, math.Min(1, alpha))
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}
