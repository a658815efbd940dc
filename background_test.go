package squares

import (
	"errors"
	"testing"
)

func TestMountSizesSurfaceToViewport(t *testing.T) {
	bg, _, canvas := mountHeadless(DefaultConfig(), 800, 600)

	if got := bg.SurfaceSize(); got != (Size{W: 800, H: 600}) {
		t.Errorf("SurfaceSize = %v, want 800x600", got)
	}
	if canvas.w != 800 || canvas.h != 600 {
		t.Errorf("canvas size = %dx%d, want 800x600", canvas.w, canvas.h)
	}
	if !bg.Mounted() {
		t.Error("Mounted = false after Mount")
	}
	if got := bg.Status(); got != AnimatorRunning {
		t.Errorf("Status = %v, want running", got)
	}
}

func TestMountRegistersOneListenerPerEvent(t *testing.T) {
	bg, host, _ := mountHeadless(DefaultConfig(), 100, 100)

	for _, ev := range []EventType{EventResize, EventPointerMove, EventPointerLeave} {
		if got := host.ListenerCount(ev); got != 1 {
			t.Errorf("ListenerCount(%v) = %d, want 1", ev, got)
		}
	}

	bg.Unmount()
	for _, ev := range []EventType{EventResize, EventPointerMove, EventPointerLeave} {
		if got := host.ListenerCount(ev); got != 0 {
			t.Errorf("after Unmount ListenerCount(%v) = %d, want 0", ev, got)
		}
	}
}

func TestMountTwiceFails(t *testing.T) {
	bg, host, _ := mountHeadless(DefaultConfig(), 100, 100)
	if err := bg.Mount(host); !errors.Is(err, ErrAlreadyMounted) {
		t.Errorf("second Mount err = %v, want ErrAlreadyMounted", err)
	}
}

func TestMountSurfaceUnavailable(t *testing.T) {
	host := NewHeadlessHost(100, 100, &recordingCanvas{})
	host.FailCanvas(errBoom)
	bg, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	err = bg.Mount(host)
	if !errors.Is(err, ErrSurfaceUnavailable) {
		t.Fatalf("Mount err = %v, want ErrSurfaceUnavailable", err)
	}
	if bg.Mounted() {
		t.Error("Mounted = true after failed Mount")
	}
	if got := host.frames.Pending(); got != 0 {
		t.Errorf("pending frames = %d, want 0", got)
	}
	for _, ev := range []EventType{EventResize, EventPointerMove, EventPointerLeave} {
		if got := host.ListenerCount(ev); got != 0 {
			t.Errorf("ListenerCount(%v) = %d, want 0", ev, got)
		}
	}
}

func TestMountNilCanvas(t *testing.T) {
	host := NewHeadlessHost(100, 100, nil)
	bg, _ := New(DefaultConfig())
	if err := bg.Mount(host); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("Mount err = %v, want ErrSurfaceUnavailable", err)
	}
}

func TestMountCanvasResizeFailure(t *testing.T) {
	host := NewHeadlessHost(100, 100, &recordingCanvas{failSize: errBoom})
	bg, _ := New(DefaultConfig())
	err := bg.Mount(host)
	if !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("Mount err = %v, want ErrSurfaceUnavailable", err)
	}
	if bg.Mounted() {
		t.Error("Mounted = true after failed Mount")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SquareSize = 0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New err = %v, want ErrInvalidConfig", err)
	}
}

func TestResizeTracksViewport(t *testing.T) {
	bg, host, canvas := mountHeadless(DefaultConfig(), 800, 600)

	host.InjectResize(1024, 300)
	host.Step()

	if got := bg.SurfaceSize(); got != (Size{W: 1024, H: 300}) {
		t.Errorf("SurfaceSize = %v, want 1024x300", got)
	}
	if canvas.w != 1024 || canvas.h != 300 {
		t.Errorf("canvas size = %dx%d, want 1024x300", canvas.w, canvas.h)
	}
}

func TestResizeToZeroKeepsAnimating(t *testing.T) {
	bg, host, canvas := mountHeadless(DefaultConfig(), 200, 200)

	host.InjectResize(0, 0)
	host.Step()
	host.Step()

	if got := bg.SurfaceSize(); got != (Size{}) {
		t.Errorf("SurfaceSize = %v, want 0x0", got)
	}
	if len(canvas.strokes) != 0 {
		t.Errorf("strokes on empty surface = %d, want 0", len(canvas.strokes))
	}
	if got := bg.Status(); got != AnimatorRunning {
		t.Errorf("Status = %v, want running", got)
	}
	if got := bg.Stats().FramesDrawn; got != 2 {
		t.Errorf("FramesDrawn = %d, want 2", got)
	}
}

func TestUnmountFreezesState(t *testing.T) {
	bg, host, _ := mountHeadless(DefaultConfig(), 200, 200)
	host.Advance(10)
	host.InjectMove(50, 50)
	host.Step()

	bg.Unmount()
	offset := bg.Offset()
	cell, ok := bg.Hovered()
	drawn := bg.Stats().FramesDrawn

	host.InjectMove(150, 150)
	host.InjectResize(10, 10)
	host.Step()
	host.Step()
	host.Advance(5)

	if got := bg.Offset(); got != offset {
		t.Errorf("Offset changed after Unmount: %v -> %v", offset, got)
	}
	if c2, ok2 := bg.Hovered(); c2 != cell || ok2 != ok {
		t.Errorf("Hovered changed after Unmount: %v,%v -> %v,%v", cell, ok, c2, ok2)
	}
	if got := bg.SurfaceSize(); got != (Size{W: 200, H: 200}) {
		t.Errorf("SurfaceSize changed after Unmount: %v", got)
	}
	if got := bg.Stats().FramesDrawn; got != drawn {
		t.Errorf("FramesDrawn = %d after Unmount, want %d", got, drawn)
	}
	if got := bg.Status(); got != AnimatorIdle {
		t.Errorf("Status = %v, want idle", got)
	}
	if got := host.frames.Pending(); got != 0 {
		t.Errorf("pending frames = %d, want 0", got)
	}
}

func TestUnmountIdempotent(t *testing.T) {
	bg, _, _ := mountHeadless(DefaultConfig(), 100, 100)
	bg.Unmount()
	bg.Unmount()
	if bg.Mounted() {
		t.Error("Mounted = true after Unmount")
	}

	var never Background
	never.Unmount()
}

func TestRemountStartsFresh(t *testing.T) {
	bg, host, _ := mountHeadless(DefaultConfig(), 200, 200)
	host.Advance(7)
	host.InjectMove(10, 10)
	host.Step()
	bg.Unmount()

	if err := bg.Mount(host); err != nil {
		t.Fatalf("remount: %v", err)
	}
	if got := bg.Offset(); got != (Vec2{}) {
		t.Errorf("Offset after remount = %v, want zero", got)
	}
	if _, ok := bg.Hovered(); ok {
		t.Error("Hovered after remount = true, want false")
	}
	if got := bg.Stats(); got != (Stats{}) {
		t.Errorf("Stats after remount = %+v, want zero", got)
	}
	if got := host.ListenerCount(EventPointerMove); got != 1 {
		t.Errorf("ListenerCount(move) after remount = %d, want 1", got)
	}
}

func TestStatusBeforeMount(t *testing.T) {
	bg, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := bg.Status(); got != AnimatorIdle {
		t.Errorf("Status = %v, want idle", got)
	}
	if got := bg.Stats(); got != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", got)
	}
}

func TestOverlappingHostsStayIndependent(t *testing.T) {
	a, hostA, _ := mountHeadless(DefaultConfig(), 100, 100)
	b, hostB, _ := mountHeadless(DefaultConfig(), 100, 100)

	hostA.InjectMove(5, 5)
	hostA.Step()
	hostB.Advance(3)

	if _, ok := b.Hovered(); ok {
		t.Error("move on host A changed B's hover")
	}
	if _, ok := a.Hovered(); !ok {
		t.Error("A not hovering after move")
	}
	if a.Offset() == b.Offset() {
		t.Errorf("offsets equal after different frame counts: %v", a.Offset())
	}
}

func TestMountAfterCanvasRestored(t *testing.T) {
	host := NewHeadlessHost(100, 100, &recordingCanvas{})
	bg, _ := New(DefaultConfig())

	host.FailCanvas(errBoom)
	for i := 0; i < 2; i++ {
		if err := bg.Mount(host); !errors.Is(err, ErrSurfaceUnavailable) {
			t.Fatalf("Mount %d err = %v, want ErrSurfaceUnavailable", i, err)
		}
	}

	host.FailCanvas(nil)
	if err := bg.Mount(host); err != nil {
		t.Fatalf("Mount after restore: %v", err)
	}
	if !bg.Mounted() {
		t.Error("Mounted = false after restore")
	}
}
