//go:build !cgo || nowindow

package viewer

import (
	"context"
	"image"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// Window is unavailable in builds without cgo or with the nowindow tag.
type Window struct{}

// Show implements Viewer.
func (Window) Show(context.Context, string, image.Image) error {
	return errors.New(errors.ErrCodeUnsupported, "window viewer not built in (needs CGO_ENABLED=1 and no nowindow tag)")
}
