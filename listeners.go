package squares

import "slices"

// handler is one registered callback. removed is set when its handle is
// removed so an emit already in progress skips it.
type handler[F any] struct {
	id      uint32
	fn      F
	removed bool
}

// Listeners is a viewport-wide event registry. Hosts embed it to satisfy the
// listener half of Host and call the Emit methods from their event loop.
// The zero value is ready to use. Not safe for concurrent use; hosts deliver
// every event on one goroutine.
//
// Listeners may register or remove other listeners (or themselves) while an
// Emit is running. A listener removed mid-emit does not fire; one added
// mid-emit fires from the next Emit on.
type Listeners struct {
	resize []*handler[func()]
	move   []*handler[func(x, y float64)]
	leave  []*handler[func()]
	nextID uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *Listeners
	event EventType
}

// Remove unregisters this listener so it no longer fires. Removing twice, or
// removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id)
	case EventPointerMove:
		h.reg.move = removeHandler(h.reg.move, h.id)
	case EventPointerLeave:
		h.reg.leave = removeHandler(h.reg.leave, h.id)
	}
}

// removeHandler flags the handler with id as removed and returns a new slice
// without it. The old backing array is left intact for any Emit iterating it.
func removeHandler[F any](s []*handler[F], id uint32) []*handler[F] {
	i := slices.IndexFunc(s, func(h *handler[F]) bool { return h.id == id })
	if i < 0 {
		return s
	}
	s[i].removed = true
	return slices.Delete(slices.Clone(s), i, i+1)
}

func addHandler[F any](l *Listeners, s []*handler[F], fn F) ([]*handler[F], uint32) {
	l.nextID++
	return append(s, &handler[F]{id: l.nextID, fn: fn}), l.nextID
}

// OnResize registers a callback for viewport resizes.
func (l *Listeners) OnResize(fn func()) CallbackHandle {
	var id uint32
	l.resize, id = addHandler(l, l.resize, fn)
	return CallbackHandle{id: id, reg: l, event: EventResize}
}

// OnPointerMove registers a callback for pointer moves anywhere in the
// viewport. Coordinates are viewport pixels.
func (l *Listeners) OnPointerMove(fn func(x, y float64)) CallbackHandle {
	var id uint32
	l.move, id = addHandler(l, l.move, fn)
	return CallbackHandle{id: id, reg: l, event: EventPointerMove}
}

// OnPointerLeave registers a callback for the pointer leaving the viewport.
func (l *Listeners) OnPointerLeave(fn func()) CallbackHandle {
	var id uint32
	l.leave, id = addHandler(l, l.leave, fn)
	return CallbackHandle{id: id, reg: l, event: EventPointerLeave}
}

// EmitResize fires every resize listener.
func (l *Listeners) EmitResize() {
	for _, h := range l.resize {
		if !h.removed {
			h.fn()
		}
	}
}

// EmitPointerMove fires every pointer-move listener.
func (l *Listeners) EmitPointerMove(x, y float64) {
	for _, h := range l.move {
		if !h.removed {
			h.fn(x, y)
		}
	}
}

// EmitPointerLeave fires every pointer-leave listener.
func (l *Listeners) EmitPointerLeave() {
	for _, h := range l.leave {
		if !h.removed {
			h.fn()
		}
	}
}

// ListenerCount returns how many listeners are registered for an event.
func (l *Listeners) ListenerCount(event EventType) int {
	switch event {
	case EventResize:
		return len(l.resize)
	case EventPointerMove:
		return len(l.move)
	case EventPointerLeave:
		return len(l.leave)
	}
	return 0
}
