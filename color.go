package squares

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color, so it can be handed directly to any drawing
// backend that accepts the standard interface.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is the fully transparent zero color.
var ColorTransparent = Color{}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the color to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Lerp interpolates between c and other by t in [0, 1]. RGB is blended with
// go-colorful, alpha linearly.
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	from := colorful.Color{R: c.R, G: c.G, B: c.B}
	to := colorful.Color{R: other.R, G: other.G, B: other.B}
	mixed := from.BlendRgb(to, t)
	return Color{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// Over composites c on top of dst (source-over, straight alpha).
func (c Color) Over(dst Color) Color {
	if c.A >= 1 {
		return c
	}
	if c.A <= 0 {
		return dst
	}
	outA := c.A + dst.A*(1-c.A)
	if outA <= 0 {
		return ColorTransparent
	}
	mix := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / outA
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: outA}
}

// String formats the color as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) String() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorFromStd converts any color.Color into a Color.
func ColorFromStd(col color.Color) Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a paint descriptor. Supported forms:
//
//	#rgb #rgba #rrggbb #rrggbbaa
//	rgb(r, g, b)  rgba(r, g, b, a)   (r, g, b in 0..255, a in 0..1)
//	transparent
//	any CSS/SVG color keyword ("dimgray", "black", ...)
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return Color{}, fmt.Errorf("%w: empty color", ErrInvalidConfig)
	case s == "transparent":
		return ColorTransparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb"):
		return parseFuncColor(s)
	}
	if named, ok := colornames.Map[s]; ok {
		return ColorFromStd(named), nil
	}
	return Color{}, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, s)
}

func parseHexColor(s string) (Color, error) {
	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 5:
		a, err := strconv.ParseUint(s[4:5], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
		}
		alpha = float64(a) / 15
		s = s[:4]
	case 9:
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseFuncColor(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	name := strings.TrimSpace(s[:open])
	parts := strings.Split(s[open+1:len(s)-1], ",")
	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: color %q: want %d components, got %d", ErrInvalidConfig, s, want, len(parts))
	}
	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
		}
		if i < 3 {
			v /= 255
		}
		vals[i] = clamp01(v)
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
