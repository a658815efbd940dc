package squares

import "time"

// debugLog reports the last frame's draw time and counters. Only called when
// Config.Debug is set.
func (a *Animator) debugLog(drawTime time.Duration) {
	size := a.state.surface
	Logger().Debug("squares: frame",
		"draw", drawTime,
		"cells", a.stats.CellsLast,
		"surface", size,
		"offsetX", a.state.offset.X,
		"offsetY", a.state.offset.Y,
		"drawn", a.stats.FramesDrawn,
		"skipped", a.stats.FramesSkipped,
	)
}
