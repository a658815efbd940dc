package squares

import "testing"

func TestListenersEmit(t *testing.T) {
	var l Listeners
	var resized, left int
	var gotX, gotY float64
	l.OnResize(func() { resized++ })
	l.OnPointerMove(func(x, y float64) { gotX, gotY = x, y })
	l.OnPointerLeave(func() { left++ })

	l.EmitResize()
	l.EmitPointerMove(3, 4)
	l.EmitPointerLeave()
	l.EmitPointerLeave()

	if resized != 1 {
		t.Errorf("resize calls = %d, want 1", resized)
	}
	if gotX != 3 || gotY != 4 {
		t.Errorf("move = (%v, %v), want (3, 4)", gotX, gotY)
	}
	if left != 2 {
		t.Errorf("leave calls = %d, want 2", left)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	var l Listeners
	a, b := 0, 0
	ha := l.OnPointerMove(func(x, y float64) { a++ })
	l.OnPointerMove(func(x, y float64) { b++ })

	ha.Remove()
	ha.Remove()
	l.EmitPointerMove(0, 0)

	if a != 0 {
		t.Errorf("removed listener fired %d times", a)
	}
	if b != 1 {
		t.Errorf("remaining listener fired %d times, want 1", b)
	}
	if got := l.ListenerCount(EventPointerMove); got != 1 {
		t.Errorf("ListenerCount = %d, want 1", got)
	}
}

func TestCallbackHandleRemoveOnlyItsEvent(t *testing.T) {
	var l Listeners
	hr := l.OnResize(func() {})
	l.OnPointerLeave(func() {})
	hr.Remove()
	if got := l.ListenerCount(EventResize); got != 0 {
		t.Errorf("ListenerCount(resize) = %d, want 0", got)
	}
	if got := l.ListenerCount(EventPointerLeave); got != 1 {
		t.Errorf("ListenerCount(leave) = %d, want 1", got)
	}
}

func TestZeroCallbackHandle(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		e    EventType
		want string
	}{
		{EventResize, "resize"},
		{EventPointerMove, "pointermove"},
		{EventPointerLeave, "pointerleave"},
		{EventType(9), "EventType(9)"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}

func TestRemoveLaterListenerDuringEmit(t *testing.T) {
	var l Listeners
	var second CallbackHandle
	fired := 0
	l.OnPointerLeave(func() { second.Remove() })
	second = l.OnPointerLeave(func() { fired++ })
	l.OnPointerLeave(func() {})

	l.EmitPointerLeave()
	l.EmitPointerLeave()

	if fired != 0 {
		t.Errorf("removed listener fired %d times, want 0", fired)
	}
	if got := l.ListenerCount(EventPointerLeave); got != 2 {
		t.Errorf("ListenerCount = %d, want 2", got)
	}
}

func TestListenerRemovesItselfDuringEmit(t *testing.T) {
	var l Listeners
	var self CallbackHandle
	a, b := 0, 0
	self = l.OnResize(func() { a++; self.Remove() })
	l.OnResize(func() { b++ })

	l.EmitResize()
	l.EmitResize()

	if a != 1 {
		t.Errorf("self-removing listener fired %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("other listener fired %d times, want 2", b)
	}
}

func TestAddListenerDuringEmit(t *testing.T) {
	var l Listeners
	added := 0
	l.OnPointerMove(func(x, y float64) {
		l.OnPointerMove(func(x, y float64) { added++ })
	})

	l.EmitPointerMove(1, 1)
	if added != 0 {
		t.Errorf("listener added mid-emit fired %d times in the same emit", added)
	}
	l.EmitPointerMove(1, 1)
	if added != 1 {
		t.Errorf("listener added mid-emit fired %d times on the next emit, want 1", added)
	}
}

func TestUnmountFromEarlierListener(t *testing.T) {
	host := NewHeadlessHost(100, 100, &recordingCanvas{})
	bg, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	host.OnPointerLeave(func() { bg.Unmount() })
	host.OnResize(func() { bg.Unmount() })
	if err := bg.Mount(host); err != nil {
		t.Fatal(err)
	}

	host.EmitPointerLeave()

	if bg.Mounted() {
		t.Error("Mounted = true after unmount from listener")
	}
	if got := host.ListenerCount(EventPointerLeave); got != 1 {
		t.Errorf("ListenerCount(leave) = %d, want 1", got)
	}
	if got := host.ListenerCount(EventResize); got != 1 {
		t.Errorf("ListenerCount(resize) = %d, want 1", got)
	}

	if err := bg.Mount(host); err != nil {
		t.Fatal(err)
	}
	host.EmitResize()
	if bg.Mounted() {
		t.Error("Mounted = true after unmount from resize listener")
	}
}
