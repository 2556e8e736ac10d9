// Package buildinfo holds the version stamped into splitviz builds.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/splitviz/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/splitviz/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/splitviz/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/splitviz
//
// Add -tags nowindow for headless builds without cgo or OpenGL headers.
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// Template returns the cobra version template, e.g.
//
//	splitviz version v1.0.0
//	commit: 3f2a9c1
//	built: 2026-10-18T09:00:00Z
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
