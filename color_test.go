package squares

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#333", color.NRGBA{0x33, 0x33, 0x33, 0xff}},
		{"#222", color.NRGBA{0x22, 0x22, 0x22, 0xff}},
		{"#fff8", color.NRGBA{0xff, 0xff, 0xff, 0x88}},
		{"#1a2B3c", color.NRGBA{0x1a, 0x2b, 0x3c, 0xff}},
		{"#1a2b3c80", color.NRGBA{0x1a, 0x2b, 0x3c, 0x80}},
		{"rgba(18, 18, 18, 1)", color.NRGBA{18, 18, 18, 0xff}},
		{"rgba(255,0,0,0.5)", color.NRGBA{255, 0, 0, 128}},
		{"rgb(0, 128, 255)", color.NRGBA{0, 128, 255, 0xff}},
		{"  DimGray ", color.NRGBA{105, 105, 105, 0xff}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg", "rgb(1,2)", "rgba(1,2,3)", "hsl(1,2,3)", "rgb(a,b,c)", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidConfig", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := MustParseColor("#333").String(); got != "#333333" {
		t.Errorf("String() = %q, want #333333", got)
	}
	if got := MustParseColor("#33333380").String(); got != "#33333380" {
		t.Errorf("String() = %q, want #33333380", got)
	}
}

func TestColorOver(t *testing.T) {
	red := Color{R: 1, A: 1}
	blue := Color{B: 1, A: 1}

	if got := red.Over(blue); got != red {
		t.Errorf("opaque Over = %v, want %v", got, red)
	}
	if got := ColorTransparent.Over(blue); got != blue {
		t.Errorf("transparent Over = %v, want %v", got, blue)
	}
	half := red.WithAlpha(0.5).Over(blue)
	if !approxEqual(half.R, 0.5, epsilon) || !approxEqual(half.B, 0.5, epsilon) || half.A != 1 {
		t.Errorf("half Over = %v, want (0.5, 0, 0.5, 1)", half)
	}
	onEmpty := red.WithAlpha(0.25).Over(ColorTransparent)
	if !approxEqual(onEmpty.R, 1, epsilon) || !approxEqual(onEmpty.A, 0.25, epsilon) {
		t.Errorf("Over transparent = %v, want red at 0.25", onEmpty)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0, A: 0}
	b := Color{R: 1, G: 0.5, B: 0, A: 1}
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.R, 0.5, 1e-6) || !approxEqual(mid.G, 0.25, 1e-6) || !approxEqual(mid.A, 0.5, epsilon) {
		t.Errorf("Lerp 0.5 = %v", mid)
	}
	if got := a.Lerp(b, 2); !approxEqual(got.A, 1, epsilon) {
		t.Errorf("Lerp clamps t: A = %v, want 1", got.A)
	}
}

func TestColorImplementsStdColor(t *testing.T) {
	var c color.Color = Color{R: 1, A: 0.5}
	r, _, _, a := c.RGBA()
	if a != 0x8080 {
		t.Errorf("a = %#x, want 0x8080", a)
	}
	if r != a {
		t.Errorf("premultiplied r = %#x, want %#x", r, a)
	}
	if got := ColorFromStd(c).NRGBA(); got != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("ColorFromStd round trip = %v", got)
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor did not panic")
		}
	}()
	MustParseColor("nope")
}
