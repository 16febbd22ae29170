package swipedeck

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Resizable lets the window be resized. The logical screen follows the
	// window size.
	Resizable bool

	// OnLayout is called with the logical screen size on the first frame and
	// whenever it changes. Use it to forward the width to CardStack.SetWidth.
	OnLayout func(width, height int)
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene     *Scene
	w, h      int
	resizable bool
	onLayout  func(width, height int)

	lastW, lastH int
}

func (g *game) Update() error {
	g.scene.Update()
	if r := g.scene.testRunner; r != nil && r.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) { g.scene.Draw(screen) }

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.w, g.h
	if g.resizable && outsideWidth > 0 && outsideHeight > 0 {
		w, h = outsideWidth, outsideHeight
	}
	if w != g.lastW || h != g.lastH {
		g.lastW, g.lastH = w, h
		if g.onLayout != nil {
			g.onLayout(w, h)
		}
	}
	return w, h
}

// Run opens a window and drives the scene until the window closes or an
// attached TestRunner finishes.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := &game{
		scene:     scene,
		w:         cfg.Width,
		h:         cfg.Height,
		resizable: cfg.Resizable,
		onLayout:  cfg.OnLayout,
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
