package squares

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// vignetteRadiusDivisor sets the vignette radius to max(W, H) / 1.5.
const vignetteRadiusDivisor = 1.5

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inexpo":     ease.InExpo,
	"outexpo":    ease.OutExpo,
	"incirc":     ease.InCirc,
	"outcirc":    ease.OutCirc,
}

// EaseByName returns the gween easing function for a configuration name
// such as "linear" or "inOutSine" (case-insensitive). Empty means linear.
func EaseByName(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vignette ease %q", ErrInvalidConfig, name)
	}
	return fn, nil
}

// EaseNames lists the accepted easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for k := range easings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ColorStop is one color position along a gradient, Offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// RadialGradient is a circular gradient between two radii around a center.
// Ease, when set, reshapes the parameter between the first and last stop.
type RadialGradient struct {
	CX, CY  float64
	Radius0 float64
	Radius1 float64
	Stops   []ColorStop
	Ease    ease.TweenFunc
}

// Vignette builds the overlay for a surface: transparent bg at the center,
// fully opaque bg at max(W, H) / 1.5.
func Vignette(size Size, bg Color, fn ease.TweenFunc) RadialGradient {
	w, h := float64(size.W), float64(size.H)
	return RadialGradient{
		CX:      w / 2,
		CY:      h / 2,
		Radius0: 0,
		Radius1: math.Max(w, h) / vignetteRadiusDivisor,
		Stops: []ColorStop{
			{Offset: 0, Color: bg.WithAlpha(0)},
			{Offset: 1, Color: bg.WithAlpha(1)},
		},
		Ease: fn,
	}
}

// param maps a point to its gradient parameter in [0, 1], easing applied.
func (g RadialGradient) param(x, y float64) float64 {
	span := g.Radius1 - g.Radius0
	var t float64
	if span <= 0 {
		t = 1
	} else {
		d := math.Hypot(x-g.CX, y-g.CY)
		t = clamp01((d - g.Radius0) / span)
	}
	if g.Ease != nil {
		t = clamp01(float64(g.Ease(float32(t), 0, 1, 1)))
	}
	return t
}

// ColorAt samples the gradient at (x, y). Points outside Radius1 take the
// last stop's color (pad extend).
func (g RadialGradient) ColorAt(x, y float64) Color {
	return g.colorAtParam(g.param(x, y))
}

func (g RadialGradient) colorAtParam(t float64) Color {
	switch len(g.Stops) {
	case 0:
		return ColorTransparent
	case 1:
		return g.Stops[0].Color
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return a.Color.Lerp(b.Color, (t-a.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Sampled returns n evenly spaced stops that approximate the eased gradient
// with plain linear interpolation, for backends whose gradients cannot take
// an easing curve. n below 2 is raised to 2.
func (g RadialGradient) Sampled(n int) []ColorStop {
	n = max(n, 2)
	stops := make([]ColorStop, n)
	for i := range n {
		off := float64(i) / float64(n-1)
		t := off
		if g.Ease != nil {
			t = clamp01(float64(g.Ease(float32(off), 0, 1, 1)))
		}
		stops[i] = ColorStop{Offset: off, Color: g.colorAtParam(t)}
	}
	return stops
}
