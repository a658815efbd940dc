// Package ggcanvas implements squares.Canvas on a gogpu/gg software context.
// It needs no window or GPU, so it backs offline renders and pixel tests.
package ggcanvas

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/phanxgames/squares"
)

// gradientSamples is the number of stops used to approximate an eased
// vignette with gg's linearly interpolated gradient.
const gradientSamples = 16

// Canvas draws into an in-memory gg.Context. The zero-size canvas accepts
// every call and draws nothing.
type Canvas struct {
	ctx *gg.Context
	w   int
	h   int
}

// New returns an empty canvas. Its size is assigned by the first SetSize.
func New() *Canvas {
	return &Canvas{}
}

// SetSize implements squares.Canvas.
func (c *Canvas) SetSize(w, h int) error {
	c.w, c.h = w, h
	if w <= 0 || h <= 0 {
		return nil
	}
	if c.ctx == nil {
		c.ctx = gg.NewContext(w, h)
		return nil
	}
	if err := c.ctx.Resize(w, h); err != nil {
		return fmt.Errorf("ggcanvas: %w", err)
	}
	// Resize keeps the buffer when dimensions are unchanged.
	c.ctx.Clear()
	return nil
}

func (c *Canvas) empty() bool {
	return c.ctx == nil || c.w <= 0 || c.h <= 0
}

// Clear implements squares.Canvas.
func (c *Canvas) Clear() error {
	if c.empty() {
		return nil
	}
	c.ctx.Clear()
	return nil
}

// FillRect implements squares.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col squares.Color) error {
	if c.empty() {
		return nil
	}
	c.ctx.SetFillBrush(gg.Solid(toRGBA(col)))
	c.ctx.DrawRectangle(x, y, w, h)
	return c.ctx.Fill()
}

// StrokeRect implements squares.Canvas.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col squares.Color) error {
	if c.empty() {
		return nil
	}
	c.ctx.SetStrokeBrush(gg.Solid(toRGBA(col)))
	c.ctx.SetLineWidth(lineWidth)
	c.ctx.DrawRectangle(x, y, w, h)
	return c.ctx.Stroke()
}

// FillGradient implements squares.Canvas.
func (c *Canvas) FillGradient(g squares.RadialGradient) error {
	if c.empty() {
		return nil
	}
	brush := gg.NewRadialGradientBrush(g.CX, g.CY, g.Radius0, g.Radius1)
	for _, st := range g.Sampled(gradientSamples) {
		brush.AddColorStop(st.Offset, toRGBA(st.Color))
	}
	c.ctx.SetFillBrush(brush)
	c.ctx.DrawRectangle(0, 0, float64(c.w), float64(c.h))
	return c.ctx.Fill()
}

// Size returns the current pixel dimensions.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Image returns the rendered pixels, or nil while the canvas is empty.
func (c *Canvas) Image() image.Image {
	if c.empty() {
		return nil
	}
	return c.ctx.Image()
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	if c.ctx == nil {
		return nil
	}
	err := c.ctx.Close()
	c.ctx = nil
	return err
}

func toRGBA(col squares.Color) gg.RGBA {
	return gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A}
}
