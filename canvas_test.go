package boxtree

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCanvasImplementsTarget(t *testing.T) {
	var _ Target = &Canvas{}
}

func TestCanvasStrokeRect(t *testing.T) {
	c := NewCanvas(ebiten.NewImage(64, 64))
	if err := c.StrokeRect(Box{4, 4, 32, 32}, color.White); err != nil {
		t.Errorf("StrokeRect() = %v, want nil", err)
	}
	// Degenerate boxes must not error either; the sink just has nothing
	// visible to emit.
	if err := c.StrokeRect(Box{4, 4, 0, 0}, color.White); err != nil {
		t.Errorf("StrokeRect(zero-size) = %v, want nil", err)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(ebiten.NewImage(64, 64))
	if err := c.FillRect(Box{8, 8, 16, 16}, color.RGBA{255, 0, 0, 255}); err != nil {
		t.Errorf("FillRect() = %v, want nil", err)
	}
}

func TestCanvasStrokeWidthDefault(t *testing.T) {
	c := Canvas{Image: ebiten.NewImage(8, 8)}
	// Zero StrokeWidth falls back to one pixel rather than emitting an
	// invisible outline.
	if err := c.StrokeRect(Box{1, 1, 4, 4}, color.White); err != nil {
		t.Errorf("StrokeRect() with zero width = %v, want nil", err)
	}
}

func TestDrawTreeOntoCanvas(t *testing.T) {
	var log []string
	tree := NewDefault[*shape]()
	tree.Insert(&shape{box: Box{1, 1, 10, 10}, name: "a", log: &log})
	tree.Insert(&shape{box: Box{200, 10, 10, 10}, name: "b", log: &log})

	c := NewCanvas(ebiten.NewImage(256, 256))
	if err := Draw(tree, c); err != nil {
		t.Fatalf("Draw onto Canvas = %v, want nil", err)
	}
	if len(log) != 2 {
		t.Errorf("drew %d elements, want 2", len(log))
	}
}
