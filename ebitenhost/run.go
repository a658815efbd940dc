package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/squares"
)

const (
	defaultTitle  = "squares"
	defaultWidth  = 1280
	defaultHeight = 720
)

// RunConfig holds window options for Run.
type RunConfig struct {
	Title        string
	Width        int
	Height       int
	Fullscreen   bool
	ShowFPS      bool
	ExitOnEscape bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}

// Run opens a resizable window, mounts bg and blocks until the window is
// closed. bg is unmounted before Run returns.
func Run(bg *squares.Background, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	host := New(cfg)
	if err := bg.Mount(host); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	defer func() {
		bg.Unmount()
		host.canvas.Dispose()
	}()

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}
