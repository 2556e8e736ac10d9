// Package stream renders an annotation stream onto a canvas.
//
// # Overview
//
// The edge-splitting pipeline prints its normal output interleaved with
// directive lines (see package annotate). A [Renderer] reads that stream line
// by line:
//
//   - lines not starting with '@' are copied to the output unchanged,
//     terminator included
//   - "@W" lines draw a watchtower marker
//   - "@E" lines draw two endpoint dots and a directed arrow
//
// The first malformed directive stops the run with an INVALID_DIRECTIVE
// error that names the line number.
//
//	fig := plot.NewFigure(plot.DefaultConfig())
//	r := stream.NewRenderer(fig, logger)
//	stats, err := r.Render(ctx, os.Stdin, os.Stdout)
//	fig.SetTitle(stream.Title(runName))
//
// # Encoding
//
// Input must be UTF-8. A leading byte order mark is dropped silently; any
// other invalid byte sequence is an INVALID_ENCODING error.
//
// # Naming
//
// [Title] and [OutputFile] derive the plot title and image file name from the
// run name. Title keeps the historical rule of dropping the first three
// characters of the run name for the dataset suffix, whatever they are.
package stream
