package squares

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// AnimatorStatus is the animator's lifecycle state.
type AnimatorStatus uint8

const (
	AnimatorIdle    AnimatorStatus = iota // no frame scheduled
	AnimatorRunning                       // exactly one frame scheduled
)

func (s AnimatorStatus) String() string {
	if s == AnimatorRunning {
		return "running"
	}
	return "idle"
}

// Stats are cumulative frame counters for one mount.
type Stats struct {
	FramesDrawn   uint64 // ticks whose drawing completed
	FramesSkipped uint64 // ticks abandoned because a draw call failed
	CellsLast     int    // cells visited by the last completed frame
}

// Animator advances the scroll offset and repaints the grid once per frame.
type Animator struct {
	cfg    Config
	state  *State
	canvas Canvas
	frames FrameSource
	ease   ease.TweenFunc

	status  AnimatorStatus
	pending FrameID
	tickFn  func()
	stats   Stats
}

func newAnimator(cfg Config, state *State, canvas Canvas, frames FrameSource, fn ease.TweenFunc) *Animator {
	a := &Animator{
		cfg:    cfg,
		state:  state,
		canvas: canvas,
		frames: frames,
		ease:   fn,
	}
	a.tickFn = a.tick
	return a
}

// Status reports whether the animator is running.
func (a *Animator) Status() AnimatorStatus {
	return a.status
}

// Stats returns the frame counters.
func (a *Animator) Stats() Stats {
	return a.stats
}

// Start moves Idle to Running and schedules the first tick.
func (a *Animator) Start() {
	if a.status == AnimatorRunning {
		return
	}
	a.status = AnimatorRunning
	a.pending = a.frames.RequestFrame(a.tickFn)
}

// Stop moves Running to Idle and synchronously cancels the pending tick.
func (a *Animator) Stop() {
	if a.status != AnimatorRunning {
		return
	}
	a.status = AnimatorIdle
	if a.pending != 0 {
		a.frames.CancelFrame(a.pending)
		a.pending = 0
	}
}

// tick is the per-frame routine. A draw failure skips the rest of the frame
// but never stops the next one from being scheduled.
func (a *Animator) tick() {
	a.pending = 0
	if a.status != AnimatorRunning {
		return
	}
	a.advance()

	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}
	cells, err := a.draw()
	if err != nil {
		a.stats.FramesSkipped++
		Logger().Debug("squares: frame skipped", "err", err, "skipped", a.stats.FramesSkipped)
	} else {
		a.stats.FramesDrawn++
		a.stats.CellsLast = cells
		if a.cfg.Debug {
			a.debugLog(time.Since(t0))
		}
	}

	if a.status == AnimatorRunning {
		a.pending = a.frames.RequestFrame(a.tickFn)
	}
}

// advance moves the offset by the effective speed along the configured
// direction, wrapping each component into [0, SquareSize).
func (a *Animator) advance() {
	v := a.cfg.EffectiveSpeed()
	dx, dy := a.cfg.Direction.step()
	s := a.cfg.SquareSize
	a.state.offset.X = wrap(a.state.offset.X+dx*v, s)
	a.state.offset.Y = wrap(a.state.offset.Y+dy*v, s)
}

// draw paints one frame: clear, cells, vignette. Backend panics are turned
// into errors so they stay inside the tick.
func (a *Animator) draw() (cells int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw panic: %v", r)
		}
	}()

	c := a.canvas
	size := a.state.surface
	if err := c.Clear(); err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}
	if size.W == 0 || size.H == 0 {
		return 0, nil
	}

	s := a.cfg.SquareSize
	hovered, hovering := a.state.Hovered()
	EachVisibleCell(size, a.state.offset, s, func(gc GridCell) bool {
		if hovering && gc.Cell == hovered {
			if err = c.FillRect(gc.X, gc.Y, s, s, a.cfg.HoverFillColor); err != nil {
				err = fmt.Errorf("fill cell %v: %w", gc.Cell, err)
				return false
			}
		}
		if a.cfg.LineWidth > 0 {
			if err = c.StrokeRect(gc.X, gc.Y, s, s, a.cfg.LineWidth, a.cfg.BorderColor); err != nil {
				err = fmt.Errorf("stroke cell %v: %w", gc.Cell, err)
				return false
			}
		}
		cells++
		return true
	})
	if err != nil {
		return cells, err
	}

	if err := c.FillGradient(Vignette(size, a.cfg.Background, a.ease)); err != nil {
		return cells, fmt.Errorf("vignette: %w", err)
	}
	return cells, nil
}
