package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/squares"
)

var errLost = errors.New("ebitenhost: offscreen image lost")

// Canvas implements squares.Canvas on an offscreen ebiten.Image.
type Canvas struct {
	img      *ebiten.Image
	w, h     int
	vignette vignetteCache
}

// NewCanvas returns an empty canvas; SetSize allocates the image.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Image returns the offscreen image, or nil while empty.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// SetSize implements squares.Canvas. The old image is released and a fresh,
// transparent one allocated.
func (c *Canvas) SetSize(w, h int) error {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.vignette.dispose()
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
	return nil
}

func (c *Canvas) target() (*ebiten.Image, error) {
	if c.w <= 0 || c.h <= 0 {
		return nil, nil
	}
	if c.img == nil {
		return nil, errLost
	}
	return c.img, nil
}

// Clear implements squares.Canvas.
func (c *Canvas) Clear() error {
	img, err := c.target()
	if img == nil {
		return err
	}
	img.Clear()
	return nil
}

// FillRect implements squares.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col squares.Color) error {
	img, err := c.target()
	if img == nil {
		return err
	}
	vector.DrawFilledRect(img, float32(x), float32(y), float32(w), float32(h), col, false)
	return nil
}

// StrokeRect implements squares.Canvas.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col squares.Color) error {
	img, err := c.target()
	if img == nil {
		return err
	}
	vector.StrokeRect(img, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), col, false)
	return nil
}

// FillGradient implements squares.Canvas. The gradient is rasterised once
// into a cached texture and redrawn each frame until its geometry changes.
func (c *Canvas) FillGradient(g squares.RadialGradient) error {
	img, err := c.target()
	if img == nil {
		return err
	}
	img.DrawImage(c.vignette.get(c.w, c.h, g), nil)
	return nil
}

// Dispose releases the offscreen image and the cached vignette.
func (c *Canvas) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.vignette.dispose()
	c.w, c.h = 0, 0
}
