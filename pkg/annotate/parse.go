package annotate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// Field counts per directive, the leading integer included.
const (
	watchtowerFields = 3
	edgeFields       = 5
)

// IsDirective reports whether line is a directive rather than pass-through text.
func IsDirective(line string) bool {
	return len(line) > 0 && line[0] == Marker
}

// Parse parses a single directive line. A trailing line terminator is ignored.
//
// Errors are *errors.Error with code ErrCodeInvalidDirective whose cause is an
// *errors.DirectiveError describing the problem.
func Parse(line string) (Annotation, error) {
	text := strings.TrimRight(line, "\r\n")
	if !IsDirective(text) {
		return nil, invalid(text, "missing %q marker", Marker)
	}
	if len(text) < 2 {
		return nil, invalid(text, "missing directive kind")
	}

	kind := Kind(text[1])
	fields := strings.Fields(text[2:])

	switch kind {
	case KindWatchtower:
		return parseWatchtower(text, fields)
	case KindEdge:
		return parseEdge(text, fields)
	}
	return nil, invalid(text, "unknown directive %q", rune(kind))
}

func parseWatchtower(text string, fields []string) (Annotation, error) {
	if len(fields) != watchtowerFields {
		return nil, invalid(text, "watchtower wants %d fields, got %d", watchtowerFields, len(fields))
	}
	id, err := parseInt(text, "id", fields[0])
	if err != nil {
		return nil, err
	}
	coords, err := parseCoords(text, fields[1:], "x", "y")
	if err != nil {
		return nil, err
	}
	return Watchtower{ID: id, X: coords[0], Y: coords[1]}, nil
}

func parseEdge(text string, fields []string) (Annotation, error) {
	if len(fields) != edgeFields {
		return nil, invalid(text, "edge wants %d fields, got %d", edgeFields, len(fields))
	}
	face, err := parseInt(text, "face", fields[0])
	if err != nil {
		return nil, err
	}
	c, err := parseCoords(text, fields[1:], "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	return Edge{Face: face, X1: c[0], Y1: c[1], X2: c[2], Y2: c[3]}, nil
}

func parseInt(text, name, field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, invalid(text, "%s %q is not an integer", name, field)
	}
	return n, nil
}

func parseCoords(text string, fields []string, names ...string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, invalid(text, "%s %q is not a number", names[i], f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, invalid(text, "%s %q is not finite", names[i], f)
		}
		out[i] = v
	}
	return out, nil
}

func invalid(text, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeInvalidDirective,
		&errors.DirectiveError{Text: text, Reason: fmt.Sprintf(format, args...)},
		"malformed directive")
}
