//go:build cgo && !nowindow

package viewer

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/matzehuels/splitviz/pkg/errors"
)

// Window shows the image in a resizable desktop window. Only one window can
// be shown per process.
type Window struct{}

// Show implements Viewer. It blocks until the window closes.
func (Window) Show(ctx context.Context, title string, img image.Image) error {
	if !hasDisplay() {
		return errors.New(errors.ErrCodeUnsupported, "no display available (DISPLAY and WAYLAND_DISPLAY are unset)")
	}

	b := img.Bounds()
	g := &imageGame{ctx: ctx, src: img, w: b.Dx(), h: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(errors.ErrCodeUnsupported, err, "open window")
	}
	return ctx.Err()
}

// imageGame draws a fixed image every frame.
type imageGame struct {
	ctx  context.Context
	src  image.Image
	img  *ebiten.Image
	w, h int
}

func (g *imageGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *imageGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *imageGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
