// Package pkg provides the libraries behind the splitviz command.
//
// # Overview
//
// splitviz draws the watchtowers and split edges that a visualisation run
// announces on its output. The pkg directory is organized by stage:
//
//  1. [annotate] - Directive model, parsing, and the color palette
//  2. [stream] - Line-by-line pass-through and drawing
//  3. [plot] - Figure, axes, markers, arrows, and JPEG encoding
//  4. [viewer] - Blocking display of the finished image
//  5. [pipeline] - Orchestration (stream → render → save → show)
//
// # Architecture
//
//	stdin
//	  ↓
//	[stream] package (echo ordinary lines, parse directives)
//	  ↓
//	[plot] package (markers + arrows on autoscaled axes)
//	  ↓
//	<run>.jpeg, then [viewer]
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil) // nil viewer: save only
//	res, err := runner.Run(ctx, pipeline.Options{RunName: "sq1"}, os.Stdin, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Title) // Part 3 Square Dataset1
//
// Supporting packages: [errors] for coded errors, [buildinfo] for version
// stamping, and [observability] for stage hooks.
//
// [annotate]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/annotate
// [stream]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/stream
// [plot]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/plot
// [viewer]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/viewer
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/buildinfo
// [observability]: https://pkg.go.dev/github.com/matzehuels/splitviz/pkg/observability
package pkg
