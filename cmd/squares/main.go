// Command squares runs the animated grid background in a window, in a
// terminal, or headless to PNG files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/squares"
	"github.com/phanxgames/squares/ebitenhost"
	"github.com/phanxgames/squares/ggcanvas"
	"github.com/phanxgames/squares/termhost"
)

// terminalSquareSize replaces the window default in the terminal, where one
// pixel is half a character cell.
const terminalSquareSize = 8

var (
	configFile string
	logLevel   string

	direction  string
	speed      float64
	squareSize float64
	lineWidth  float64
	borderCol  string
	hoverCol   string
	background string
	vigEase    string
	debug      bool

	// window
	title      string
	winW       int
	winH       int
	fullscreen bool
	showFPS    bool

	// term
	termFPS int

	// render
	outDir     string
	renderW    int
	renderH    int
	frames     int
	every      int
	scriptFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "squares",
		Short:         "animated scrolling grid background",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
		RunE: runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error, off")
	pf.StringVar(&direction, "direction", "right", "scroll direction: diagonal, up, right, down, left")
	pf.Float64Var(&speed, "speed", squares.DefaultSpeed, "scroll speed in pixels per frame")
	pf.Float64Var(&squareSize, "square-size", squares.DefaultSquareSize, "cell edge in pixels")
	pf.Float64Var(&lineWidth, "line-width", squares.DefaultLineWidth, "border width in pixels")
	pf.StringVar(&borderCol, "border-color", "#333", "border color")
	pf.StringVar(&hoverCol, "hover-color", "#222", "hovered cell fill color")
	pf.StringVar(&background, "background", "rgba(18, 18, 18, 1)", "vignette color")
	pf.StringVar(&vigEase, "ease", squares.DefaultVignetteEase, "vignette easing: "+strings.Join(squares.EaseNames(), ", "))
	pf.BoolVar(&debug, "debug", false, "log per-frame timings (needs --log-level debug)")

	windowFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&title, "title", "squares", "window title")
		cmd.Flags().IntVar(&winW, "width", 1280, "window width")
		cmd.Flags().IntVar(&winH, "height", 720, "window height")
		cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")
		cmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS overlay")
	}
	windowFlags(rootCmd)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open a window (default)",
		RunE:  runWindow,
	}
	windowFlags(windowCmd)

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "draw in the terminal",
		RunE:  runTerm,
	}
	termCmd.Flags().IntVar(&termFPS, "fps", 30, "frames per second")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headlessly to PNG",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&outDir, "out", "frames", "output directory")
	renderCmd.Flags().IntVar(&renderW, "width", 640, "surface width")
	renderCmd.Flags().IntVar(&renderH, "height", 360, "surface height")
	renderCmd.Flags().IntVar(&frames, "frames", 60, "frames to run (without --script)")
	renderCmd.Flags().IntVar(&every, "every", 0, "write a PNG every N frames; 0 writes only the last")
	renderCmd.Flags().StringVar(&scriptFile, "script", "", "JSON script of moves, resizes and snapshots")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}

	rootCmd.AddCommand(windowCmd, termCmd, renderCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "squares:", err)
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "off", "":
		squares.SetLogger(nil)
		return nil
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	squares.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadConfig starts from the config file (or defaults) and applies only the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (squares.Config, error) {
	cfg := squares.DefaultConfig()
	if configFile != "" {
		loaded, err := squares.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	var err error
	if flags.Changed("direction") {
		if cfg.Direction, err = squares.ParseDirection(direction); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("square-size") {
		cfg.SquareSize = squareSize
	}
	if flags.Changed("line-width") {
		cfg.LineWidth = lineWidth
	}
	colors := []struct {
		flag string
		val  string
		dst  *squares.Color
	}{
		{"border-color", borderCol, &cfg.BorderColor},
		{"hover-color", hoverCol, &cfg.HoverFillColor},
		{"background", background, &cfg.Background},
	}
	for _, c := range colors {
		if !flags.Changed(c.flag) {
			continue
		}
		if *c.dst, err = squares.ParseColor(c.val); err != nil {
			return cfg, fmt.Errorf("--%s: %w", c.flag, err)
		}
	}
	if flags.Changed("ease") {
		cfg.VignetteEase = vigEase
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	return cfg, cfg.Validate()
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bg, err := squares.New(cfg)
	if err != nil {
		return err
	}
	return ebitenhost.Run(bg, ebitenhost.RunConfig{
		Title:        title,
		Width:        winW,
		Height:       winH,
		Fullscreen:   fullscreen,
		ShowFPS:      showFPS,
		ExitOnEscape: true,
	})
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("square-size") && configFile == "" {
		cfg.SquareSize = terminalSquareSize
	}
	bg, err := squares.New(cfg)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return termhost.Run(ctx, bg, screen, termhost.RunConfig{FPS: termFPS})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bg, err := squares.New(cfg)
	if err != nil {
		return err
	}
	canvas := ggcanvas.New()
	defer canvas.Close()

	host := squares.NewHeadlessHost(renderW, renderH, canvas)
	host.SetSnapshotFunc(func(label string) error {
		path, err := canvas.WritePNG(outDir, label)
		if err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return err
	})
	if err := bg.Mount(host); err != nil {
		return err
	}
	defer bg.Unmount()

	if scriptFile != "" {
		return runScript(host)
	}
	for i := 1; i <= frames; i++ {
		host.Step()
		if every > 0 && i%every == 0 {
			if err := host.Snapshot(fmt.Sprintf("frame-%04d", i)); err != nil {
				return err
			}
		}
	}
	if every <= 0 {
		return host.Snapshot(fmt.Sprintf("frame-%04d", frames))
	}
	return nil
}

// maxScriptFrames bounds a scripted render so a bad script cannot spin.
const maxScriptFrames = 100000

func runScript(host *squares.HeadlessHost) error {
	data, err := os.ReadFile(scriptFile)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := squares.LoadScript(data)
	if err != nil {
		return err
	}
	_, err = runner.Run(host, maxScriptFrames)
	return err
}
