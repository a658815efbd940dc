package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/squares"
)

// halfBlock draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = '▀'

// Canvas rasterises into a pixel buffer where one terminal cell holds two
// vertically stacked pixels. Pixels are composited over an opaque base color
// when flushed to the screen.
type Canvas struct {
	w, h int
	pix  []squares.Color
	base squares.Color
}

// NewCanvas returns an empty canvas flushed over base.
func NewCanvas(base squares.Color) *Canvas {
	return &Canvas{base: base.WithAlpha(1)}
}

// SetSize implements squares.Canvas.
func (c *Canvas) SetSize(w, h int) error {
	c.w, c.h = w, h
	n := w * h
	if cap(c.pix) >= n {
		c.pix = c.pix[:n]
		clear(c.pix)
	} else {
		c.pix = make([]squares.Color, n)
	}
	return nil
}

// Size returns the pixel dimensions.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Clear implements squares.Canvas.
func (c *Canvas) Clear() error {
	clear(c.pix)
	return nil
}

// Pixel returns the composited-but-unflushed pixel at (x, y).
func (c *Canvas) Pixel(x, y int) squares.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return squares.ColorTransparent
	}
	return c.pix[y*c.w+x]
}

func (c *Canvas) blend(x, y int, col squares.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.w + x
	c.pix[i] = col.Over(c.pix[i])
}

// span converts [p, p+size) to the pixel index range whose centers it covers.
func span(p, size float64) (int, int) {
	return int(math.Ceil(p - 0.5)), int(math.Ceil(p + size - 0.5))
}

// FillRect implements squares.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col squares.Color) error {
	x0, x1 := span(x, w)
	y0, y1 := span(y, h)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.w), min(y1, c.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col)
		}
	}
	return nil
}

// StrokeRect implements squares.Canvas. Edges are drawn on the pixel rows
// and columns nearest the rectangle's borders, at least one pixel thick.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col squares.Color) error {
	lw := max(int(math.Round(lineWidth)), 1)
	left, top := int(math.Round(x)), int(math.Round(y))
	right, bottom := int(math.Round(x+w)), int(math.Round(y+h))
	if bottom < 0 || top >= c.h || right < 0 || left >= c.w {
		return nil
	}
	for i := range lw {
		for px := left; px <= right; px++ {
			c.blend(px, top+i, col)
			if bottom-i != top+i {
				c.blend(px, bottom-i, col)
			}
		}
		for py := top + lw; py <= bottom-lw; py++ {
			c.blend(left+i, py, col)
			if right-i != left+i {
				c.blend(right-i, py, col)
			}
		}
	}
	return nil
}

// FillGradient implements squares.Canvas.
func (c *Canvas) FillGradient(g squares.RadialGradient) error {
	for py := 0; py < c.h; py++ {
		for px := 0; px < c.w; px++ {
			c.blend(px, py, g.ColorAt(float64(px)+0.5, float64(py)+0.5))
		}
	}
	return nil
}

// Flush writes the buffer to screen, two pixels per cell.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row*2 < c.h; row++ {
		for x := 0; x < c.w; x++ {
			top := c.Pixel(x, row*2).Over(c.base)
			bottom := c.Pixel(x, row*2+1).Over(c.base)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

func toTcell(col squares.Color) tcell.Color {
	r, g, b := colorful.Color{R: col.R, G: col.G, B: col.B}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
