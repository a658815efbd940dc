package squares

import (
	"errors"
	"math"
)

// --- Test helpers ---

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

type rectCall struct {
	X, Y, W, H float64
	Color      Color
}

// recordingCanvas records draw calls and can be told to fail.
type recordingCanvas struct {
	w, h      int
	clears    int
	fills     []rectCall
	strokes   []rectCall
	gradients []RadialGradient

	failSize   error
	failClear  error
	failStroke error
	panicFill  bool
}

func (c *recordingCanvas) SetSize(w, h int) error {
	if c.failSize != nil {
		return c.failSize
	}
	c.w, c.h = w, h
	return nil
}

func (c *recordingCanvas) Clear() error {
	if c.failClear != nil {
		return c.failClear
	}
	c.clears++
	c.fills = c.fills[:0]
	c.strokes = c.strokes[:0]
	c.gradients = c.gradients[:0]
	return nil
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, col Color) error {
	if c.panicFill {
		panic("fill exploded")
	}
	c.fills = append(c.fills, rectCall{x, y, w, h, col})
	return nil
}

func (c *recordingCanvas) StrokeRect(x, y, w, h, lineWidth float64, col Color) error {
	if c.failStroke != nil {
		return c.failStroke
	}
	c.strokes = append(c.strokes, rectCall{x, y, w, h, col})
	return nil
}

func (c *recordingCanvas) FillGradient(g RadialGradient) error {
	c.gradients = append(c.gradients, g)
	return nil
}

var errBoom = errors.New("boom")

// mountHeadless builds a Background from cfg and mounts it on a w x h
// headless host backed by a recordingCanvas.
func mountHeadless(cfg Config, w, h int) (*Background, *HeadlessHost, *recordingCanvas) {
	canvas := &recordingCanvas{}
	host := NewHeadlessHost(w, h, canvas)
	bg, err := New(cfg)
	if err != nil {
		panic(err)
	}
	if err := bg.Mount(host); err != nil {
		panic(err)
	}
	return bg, host, canvas
}
