package squares

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeed        = 0.5
	DefaultSpeedFloor   = 0.1
	DefaultSquareSize   = 40.0
	DefaultLineWidth    = 1.0
	DefaultVignetteEase = "linear"
)

var (
	DefaultBorderColor    = MustParseColor("#333")
	DefaultHoverFillColor = MustParseColor("#222")
	DefaultBackground     = MustParseColor("rgba(18, 18, 18, 1)")
)

// Config is the render configuration of a Background. It is copied at
// construction and never changes while mounted; changing it means building a
// new Background.
type Config struct {
	// Direction is the scroll direction. Diagonal advances both axes.
	Direction Direction `yaml:"direction"`
	// Speed is the scroll advance in pixels per frame.
	Speed float64 `yaml:"speed"`
	// SpeedFloor is the minimum effective speed, so a zero Speed still moves.
	SpeedFloor float64 `yaml:"speedFloor"`
	// SquareSize is the edge length of a grid cell in device pixels.
	SquareSize float64 `yaml:"squareSize"`
	// LineWidth is the border stroke width in device pixels.
	LineWidth float64 `yaml:"lineWidth"`

	BorderColor    Color `yaml:"borderColor"`
	HoverFillColor Color `yaml:"hoverFillColor"`
	// Background is the vignette color reached at the vignette radius.
	Background Color `yaml:"background"`
	// VignetteEase names the gween easing curve shaping the vignette ramp.
	VignetteEase string `yaml:"vignetteEase"`

	// Debug logs per-frame timings through the package logger.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Direction:      DirectionRight,
		Speed:          DefaultSpeed,
		SpeedFloor:     DefaultSpeedFloor,
		SquareSize:     DefaultSquareSize,
		LineWidth:      DefaultLineWidth,
		BorderColor:    DefaultBorderColor,
		HoverFillColor: DefaultHoverFillColor,
		Background:     DefaultBackground,
		VignetteEase:   DefaultVignetteEase,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.SquareSize > 0) || math.IsInf(c.SquareSize, 0):
		return fmt.Errorf("%w: squareSize must be positive, got %v", ErrInvalidConfig, c.SquareSize)
	case c.Speed < 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0):
		return fmt.Errorf("%w: speed must be non-negative, got %v", ErrInvalidConfig, c.Speed)
	case !(c.SpeedFloor > 0) || math.IsInf(c.SpeedFloor, 0):
		return fmt.Errorf("%w: speedFloor must be positive, got %v", ErrInvalidConfig, c.SpeedFloor)
	case c.LineWidth < 0 || math.IsNaN(c.LineWidth):
		return fmt.Errorf("%w: lineWidth must be non-negative, got %v", ErrInvalidConfig, c.LineWidth)
	case int(c.Direction) >= len(directionNames):
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidConfig, c.Direction)
	}
	if _, err := EaseByName(c.VignetteEase); err != nil {
		return err
	}
	return nil
}

// EffectiveSpeed is the per-frame advance: Speed clamped to SpeedFloor.
func (c Config) EffectiveSpeed() float64 {
	return math.Max(c.Speed, c.SpeedFloor)
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
