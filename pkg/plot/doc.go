// Package plot is a small 2D plotting backend for annotation renderings.
//
// # Overview
//
// A [Figure] collects artists (point markers and filled arrows) in data
// coordinates, then rasterizes them onto a single autoscaled axes box with a
// frame, ticks, tick labels, a title and an optional legend:
//
//	fig := plot.NewFigure(plot.DefaultConfig())
//	fig.Arrow(plot.Arrow{X: 0, Y: 0, DX: 1, DY: 1, Width: 0.08, LengthIncludesHead: true,
//	    Shape: plot.ArrowLeft, Face: colornames.Orange, Alpha: 0.7})
//	fig.Marker(plot.Marker{X: 1, Y: 2, Shape: plot.MarkerPoint, Size: 12,
//	    Face: colornames.Cyan, Alpha: 1, Label: "3"})
//	fig.SetTitle("Part 3 Square Dataset1")
//	err := fig.EncodeJPEG(w)
//
// # Configuration
//
// There is no package-level backend state. Every [Figure] is built from an
// explicit [Config] holding its size in inches, resolution, JPEG quality and
// whether to draw a legend. [DefaultConfig] returns a 6.4x4.8 inch figure at
// 100 DPI, i.e. a 640x480 image.
//
// # Geometry
//
// Sizes that the caller thinks of as "visual" (marker size, line widths, font
// sizes) are in points and scale with DPI. Arrow widths and head sizes are in
// data units, so arrows scale with the data, and [Arrow.Polygon] returns the
// outline in data coordinates.
//
// Data limits cover every marker position and every arrow vertex, are
// expanded when singular, then padded by 5% on each side. An empty figure
// shows the unit square.
//
// # Draw Order
//
// Arrows are drawn before markers so that endpoint dots stay visible on top
// of the arrows they belong to. Within each kind, insertion order is kept.
package plot
