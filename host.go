package squares

// Host is the environment a Background is mounted into: a window, a
// terminal, or a headless driver. Listener registration is viewport-wide,
// never limited to the surface bounds.
//
// Hosts deliver every callback (listeners and frames) on a single goroutine.
type Host interface {
	Viewport
	Origin

	// Canvas returns the drawing surface. An error means the surface is
	// unavailable and the background stays inert.
	Canvas() (Canvas, error)
	// Frames returns the frame-pacing source, invoked once per refresh.
	Frames() FrameSource

	OnResize(fn func()) CallbackHandle
	OnPointerMove(fn func(x, y float64)) CallbackHandle
	OnPointerLeave(fn func()) CallbackHandle
}
