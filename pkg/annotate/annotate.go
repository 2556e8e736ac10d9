package annotate

import "fmt"

// Marker is the first character of every directive line.
const Marker = '@'

// Kind identifies a directive by the letter following [Marker].
type Kind byte

const (
	KindWatchtower Kind = 'W'
	KindEdge       Kind = 'E'
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWatchtower:
		return "watchtower"
	case KindEdge:
		return "edge"
	}
	return fmt.Sprintf("kind %q", rune(k))
}

// Annotation is a parsed directive.
type Annotation interface {
	Kind() Kind
}

// Watchtower is a labelled point, drawn as a single colored marker.
type Watchtower struct {
	ID   int
	X, Y float64
}

// Kind implements Annotation.
func (Watchtower) Kind() Kind { return KindWatchtower }

// Edge is a directed segment belonging to a face, drawn as two endpoint dots
// and an arrow from (X1, Y1) to (X2, Y2).
type Edge struct {
	Face   int
	X1, Y1 float64
	X2, Y2 float64
}

// Kind implements Annotation.
func (Edge) Kind() Kind { return KindEdge }

// Delta returns the displacement from the start to the end point.
func (e Edge) Delta() (dx, dy float64) {
	return e.X2 - e.X1, e.Y2 - e.Y1
}
