package annotate

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Uncolored is the reserved id that opts out of the palette.
const Uncolored = -1

// NeutralColor is the color name used for [Uncolored].
const NeutralColor = "black"

// Palette is the color cycle indexed by id mod len(Palette). The order is
// fixed; existing renderings depend on it.
var Palette = [...]string{"orange", "gold", "lime", "cyan", "blue", "indigo", "violet"}

// ColorName returns the named color for an id.
func ColorName(id int) string {
	if id == Uncolored {
		return NeutralColor
	}
	n := len(Palette)
	return Palette[((id%n)+n)%n]
}

// ColorOf returns the RGB value of ColorName(id).
func ColorOf(id int) color.RGBA {
	return colornames.Map[ColorName(id)]
}
