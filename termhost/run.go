package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/squares"
)

const defaultFPS = 30

// RunConfig holds terminal options for Run.
type RunConfig struct {
	// FPS is the frame rate; terminals rarely keep up with 60.
	FPS int
}

// Run initialises screen, mounts bg and drives frames until ctx is done or
// the user presses q, Esc or Ctrl-C. The screen is finalised on return.
func Run(ctx context.Context, bg *squares.Background, screen tcell.Screen, cfg RunConfig) error {
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termhost: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	host := New(screen, bg.Config().Background)
	if err := bg.Mount(host); err != nil {
		return fmt.Errorf("termhost: %w", err)
	}
	defer bg.Unmount()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if host.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			host.Tick()
		}
	}
}
