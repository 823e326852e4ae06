package boxtree

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameDrawErrorSurfacesOnUpdate(t *testing.T) {
	boom := errors.New("draw failed")
	g := &game{cfg: RunConfig{
		Width: 64, Height: 64,
		OnDraw: func(c *Canvas) error { return boom },
	}}

	g.Draw(ebiten.NewImage(64, 64))
	if err := g.Update(); !errors.Is(err, boom) {
		t.Errorf("Update() after failed Draw = %v, want the draw error", err)
	}
}

func TestGameDrawSkippedAfterError(t *testing.T) {
	calls := 0
	g := &game{cfg: RunConfig{
		Width: 64, Height: 64,
		OnDraw: func(c *Canvas) error {
			calls++
			return errors.New("draw failed")
		},
	}}

	screen := ebiten.NewImage(64, 64)
	g.Draw(screen)
	g.Draw(screen)
	if calls != 1 {
		t.Errorf("OnDraw called %d times after failure, want 1", calls)
	}
}

func TestGameUpdateCallback(t *testing.T) {
	var gotDt float64
	g := &game{cfg: RunConfig{
		Width: 64, Height: 64,
		OnUpdate: func(dt float64) error {
			gotDt = dt
			return nil
		},
	}}
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}
	if gotDt <= 0 {
		t.Errorf("OnUpdate received dt = %v, want > 0", gotDt)
	}
}

func TestGameLayout(t *testing.T) {
	g := &game{cfg: RunConfig{Width: 320, Height: 200}}
	w, h := g.Layout(1000, 1000)
	if w != 320 || h != 200 {
		t.Errorf("Layout() = (%d, %d), want (320, 200)", w, h)
	}
}
