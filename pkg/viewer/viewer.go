// Package viewer shows a rendered image to the user.
//
// [Window] opens a desktop window and blocks until it is closed, the way an
// interactive plot viewer does. The "none" viewer is a nil [Viewer]: the
// caller saves the image and skips display, for pipelines and headless
// machines.
package viewer

import (
	"context"
	"image"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// Names accepted by New.
const (
	NameWindow = "window"
	NameNone   = "none"
)

// Viewer displays an image. Show blocks until the user is done with it or
// ctx is cancelled.
type Viewer interface {
	Show(ctx context.Context, title string, img image.Image) error
}

// New returns the viewer registered under name. NameNone yields a nil
// Viewer and no error.
func New(name string) (Viewer, error) {
	if err := errors.ValidateViewer(name); err != nil {
		return nil, err
	}
	if name == NameNone {
		return nil, nil
	}
	return Window{}, nil
}
