// Package annotate defines the geometric annotations emitted by the
// edge-splitting pipeline and parses them from directive lines.
//
// # Directive Format
//
// A directive is a single line that starts with [Marker] followed by a kind
// letter and whitespace-separated fields:
//
//	@W<id> <x> <y>
//	@E<face> <x1> <y1> <x2> <y2>
//
// [Parse] is strict about arity: a watchtower takes exactly three fields and
// an edge exactly five. Integers are decimal, coordinates are finite decimal
// floats. Any other kind letter is rejected.
//
// # Colors
//
// Ids select a color from the fixed seven-entry [Palette] by floor modulo, so
// equal ids (mod 7) always share a color. The id [Uncolored] (-1) is reserved
// and always maps to [NeutralColor]:
//
//	annotate.ColorName(3)  // "cyan"
//	annotate.ColorName(10) // "cyan"
//	annotate.ColorName(-1) // "black"
package annotate
