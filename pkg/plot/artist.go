package plot

import (
	"image/color"
	"math"
)

// MarkerShape selects how a Marker is drawn.
type MarkerShape int

const (
	// MarkerPoint is a filled dot half the nominal marker size.
	MarkerPoint MarkerShape = iota
	// MarkerCircle is a filled circle of the nominal marker size.
	MarkerCircle
)

// Marker is a single point marker.
type Marker struct {
	X, Y      float64
	Shape     MarkerShape
	Size      float64     // nominal diameter in points
	Face      color.Color // fill
	Edge      color.Color // outline; nil for none
	EdgeWidth float64     // points
	Alpha     float64     // 0-1, applied to fill and outline
	Label     string      // legend entry; empty for none
}

// diameter returns the drawn diameter in points.
func (m Marker) diameter() float64 {
	if m.Shape == MarkerPoint {
		return m.Size / 2
	}
	return m.Size
}

// ArrowShape selects which halves of an arrow are drawn.
type ArrowShape int

const (
	ArrowFull ArrowShape = iota
	// ArrowLeft draws only the half on the right-hand side of the direction
	// of travel, so the head sits off the centre line.
	ArrowLeft
	ArrowRight
)

// Arrow is a filled arrow from (X, Y) along (DX, DY). Widths and head sizes
// are in data units.
type Arrow struct {
	X, Y, DX, DY float64
	Width        float64
	HeadWidth    float64 // defaults to 3 * Width
	HeadLength   float64 // defaults to 1.5 * HeadWidth

	// LengthIncludesHead makes the tip land exactly on (X+DX, Y+DY).
	// Otherwise the head is added beyond the end point.
	LengthIncludesHead bool

	Shape ArrowShape
	Face  color.Color
	Alpha float64
}

// head returns the effective head width and length.
func (a Arrow) head() (width, length float64) {
	width = a.HeadWidth
	if width == 0 {
		width = 3 * a.Width
	}
	length = a.HeadLength
	if length == 0 {
		length = 1.5 * width
	}
	return width, length
}

// Point is a position in data coordinates.
type Point struct{ X, Y float64 }

// Polygon returns the arrow outline in data coordinates, tip first.
// A zero-length arrow has no outline.
func (a Arrow) Polygon() []Point {
	hw, hl := a.head()
	distance := math.Hypot(a.DX, a.DY)

	length := distance
	if !a.LengthIncludesHead {
		length += hl
	}
	if length == 0 {
		return nil
	}

	// Half outline in the arrow frame: tip at the origin, tail along -x.
	half := []Point{
		{0, 0},
		{-hl, -hw / 2},
		{-hl, -a.Width / 2},
		{-length, -a.Width / 2},
		{-length, 0},
	}
	if !a.LengthIncludesHead {
		for i := range half {
			half[i].X += hl
		}
	}

	var coords []Point
	switch a.Shape {
	case ArrowLeft:
		coords = half
	case ArrowRight:
		coords = mirror(half)
	default:
		right := mirror(half)
		coords = append(coords, half[:len(half)-1]...)
		for i := len(right) - 2; i >= 0; i-- {
			coords = append(coords, right[i])
		}
	}

	cx, sx := 0.0, 1.0
	if distance != 0 {
		cx, sx = a.DX/distance, a.DY/distance
	}
	tipX, tipY := a.X+a.DX, a.Y+a.DY

	out := make([]Point, len(coords))
	for i, p := range coords {
		out[i] = Point{
			X: p.X*cx - p.Y*sx + tipX,
			Y: p.X*sx + p.Y*cx + tipY,
		}
	}
	return out
}

func mirror(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{p.X, -p.Y}
	}
	return out
}
