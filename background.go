package squares

import (
	"errors"
	"fmt"
)

// Background is the animated grid component. Build one with New, attach it
// to a host with Mount and detach it with Unmount. A Background can be
// remounted; every mount starts from fresh state.
type Background struct {
	cfg Config

	state    *State
	surface  *Surface
	tracker  *PointerTracker
	animator *Animator

	host    Host
	handles []CallbackHandle
	mounted bool
}

// New validates cfg and returns an unmounted Background.
func New(cfg Config) (*Background, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Background{cfg: cfg, state: &State{}}, nil
}

// Config returns the configuration the background was built with.
func (b *Background) Config() Config {
	return b.cfg
}

// Mount acquires the host canvas, sizes it to the viewport, starts the
// animation and registers the viewport-wide listeners. If the canvas is
// unavailable it returns an error wrapping ErrSurfaceUnavailable and does
// nothing else.
func (b *Background) Mount(h Host) error {
	if b.mounted {
		return ErrAlreadyMounted
	}
	canvas, err := h.Canvas()
	if err != nil || canvas == nil {
		if err == nil {
			err = errors.New("host returned no canvas")
		}
		Logger().Warn("squares: surface unavailable", "err", err)
		return fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	fn, err := EaseByName(b.cfg.VignetteEase)
	if err != nil {
		return err
	}

	state := &State{}
	surface := newSurface(state, canvas)
	if err := surface.Resize(h); err != nil {
		Logger().Warn("squares: surface unavailable", "err", err)
		return fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	b.state = state
	b.surface = surface
	b.tracker = newPointerTracker(state, h, b.cfg.SquareSize)
	b.animator = newAnimator(b.cfg, state, canvas, h.Frames(), fn)
	b.host = h

	b.animator.Start()
	b.handles = append(b.handles[:0],
		h.OnResize(b.onResize),
		h.OnPointerMove(b.tracker.Move),
		h.OnPointerLeave(b.tracker.Leave),
	)
	b.mounted = true
	Logger().Info("squares: mounted", "surface", state.surface, "direction", b.cfg.Direction)
	return nil
}

func (b *Background) onResize() {
	if err := b.surface.Resize(b.host); err != nil {
		Logger().Warn("squares: resize failed", "err", err)
	}
}

// Unmount cancels the pending frame and removes every listener registered
// by Mount. State is left as it was at the moment of unmount.
func (b *Background) Unmount() {
	if !b.mounted {
		return
	}
	b.animator.Stop()
	for _, h := range b.handles {
		h.Remove()
	}
	clear(b.handles)
	b.handles = b.handles[:0]
	b.host = nil
	b.mounted = false
	Logger().Info("squares: unmounted", "drawn", b.animator.stats.FramesDrawn)
}

// Mounted reports whether the background is attached to a host.
func (b *Background) Mounted() bool {
	return b.mounted
}

// Offset returns the current scroll offset.
func (b *Background) Offset() Vec2 {
	return b.state.Offset()
}

// Hovered returns the hovered cell, if any.
func (b *Background) Hovered() (Cell, bool) {
	return b.state.Hovered()
}

// SurfaceSize returns the current surface size.
func (b *Background) SurfaceSize() Size {
	return b.state.SurfaceSize()
}

// Status returns the animator status; AnimatorIdle before the first mount.
func (b *Background) Status() AnimatorStatus {
	if b.animator == nil {
		return AnimatorIdle
	}
	return b.animator.Status()
}

// Stats returns the frame counters of the current or last mount.
func (b *Background) Stats() Stats {
	if b.animator == nil {
		return Stats{}
	}
	return b.animator.Stats()
}
