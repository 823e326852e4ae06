package boxtree

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// TPS is the fixed update rate in ticks per second. Zero keeps the
	// Ebitengine default (60).
	TPS int

	// OnUpdate is called once per tick with the fixed step in seconds.
	// Returning an error stops the loop; the error is returned by Run.
	OnUpdate func(dt float64) error

	// OnDraw is called once per frame with a Canvas wrapping the screen.
	// A non-nil error stops the loop on the next tick.
	OnDraw func(c *Canvas) error
}

// Run opens a window and drives a fixed-step update/draw loop until the
// window is closed, Escape is pressed, or a callback returns an error.
// Closing the window or pressing Escape is a clean shutdown: Run returns
// nil.
//
// Run wraps ebiten.RunGame and must be called from the main goroutine.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = DefaultZoneSize
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultZoneSize
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	err := ebiten.RunGame(&game{cfg: cfg})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// game adapts RunConfig callbacks to the ebiten.Game interface.
type game struct {
	cfg     RunConfig
	drawErr error
}

func (g *game) Update() error {
	// Draw cannot return an error through Ebitengine; a failure recorded
	// there surfaces on the following tick.
	if g.drawErr != nil {
		return g.drawErr
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.OnDraw != nil && g.drawErr == nil {
		g.drawErr = g.cfg.OnDraw(&Canvas{Image: screen})
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
