package squares

// Canvas is the drawing backend a Background paints onto. Colors are passed
// through untouched. Any method may fail (for example on context loss); the
// animator abandons the rest of that frame and tries again on the next one.
type Canvas interface {
	// SetSize reassigns the pixel dimensions. Existing contents are
	// discarded. A zero dimension yields an empty surface that draws nothing.
	SetSize(w, h int) error
	// Clear resets every pixel to transparent.
	Clear() error
	// FillRect fills the axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color) error
	// StrokeRect outlines the rectangle with the given line width.
	StrokeRect(x, y, w, h, lineWidth float64, c Color) error
	// FillGradient paints the radial gradient over the whole surface.
	FillGradient(g RadialGradient) error
}
