package boxtree

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas adapts an *ebiten.Image into a Target. The zero value is not
// usable; wrap an image with NewCanvas or set Image directly.
//
// Canvas never fails: both methods always return nil. The error returns
// exist to satisfy Target, whose other implementations (network sinks,
// recording targets) can reject draw requests.
type Canvas struct {
	Image *ebiten.Image

	// StrokeWidth is the outline width in pixels used by StrokeRect.
	// Zero means 1.
	StrokeWidth float32
}

// NewCanvas wraps img in a Canvas with a one-pixel stroke width.
func NewCanvas(img *ebiten.Image) *Canvas {
	return &Canvas{Image: img}
}

// StrokeRect draws the outline of b onto the canvas image.
func (c *Canvas) StrokeRect(b Box, col color.Color) error {
	w := c.StrokeWidth
	if w == 0 {
		w = 1
	}
	vector.StrokeRect(c.Image,
		float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		w, col, false)
	return nil
}

// FillRect draws b filled with col onto the canvas image.
func (c *Canvas) FillRect(b Box, col color.Color) error {
	vector.DrawFilledRect(c.Image,
		float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		col, false)
	return nil
}
