package ebitenhost

import (
	"reflect"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/squares"
)

// vignetteKey identifies a rasterised gradient. The ease function is keyed by
// its code pointer since funcs are not comparable.
type vignetteKey struct {
	w, h           int
	cx, cy, r0, r1 float64
	ease           uintptr
}

// vignetteCache holds the last rasterised vignette texture.
type vignetteCache struct {
	key   vignetteKey
	stops []squares.ColorStop
	img   *ebiten.Image
}

func keyOf(w, h int, g squares.RadialGradient) vignetteKey {
	var fn uintptr
	if g.Ease != nil {
		fn = reflect.ValueOf(g.Ease).Pointer()
	}
	return vignetteKey{w: w, h: h, cx: g.CX, cy: g.CY, r0: g.Radius0, r1: g.Radius1, ease: fn}
}

// get returns a w x h texture of g, regenerating it when the gradient differs
// from the cached one.
func (vc *vignetteCache) get(w, h int, g squares.RadialGradient) *ebiten.Image {
	key := keyOf(w, h, g)
	if vc.img != nil && vc.key == key && slices.Equal(vc.stops, g.Stops) {
		return vc.img
	}
	vc.dispose()
	img := ebiten.NewImage(w, h)
	img.WritePixels(vignettePixels(w, h, g))
	vc.img = img
	vc.key = key
	vc.stops = slices.Clone(g.Stops)
	return img
}

func (vc *vignetteCache) dispose() {
	if vc.img != nil {
		vc.img.Deallocate()
		vc.img = nil
	}
	vc.stops = nil
}

// vignettePixels samples g at every pixel center and returns premultiplied
// RGBA bytes, as ebiten.Image.WritePixels expects.
func vignettePixels(w, h int, g squares.RadialGradient) []byte {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.ColorAt(float64(x)+0.5, float64(y)+0.5)
			off := (y*w + x) * 4
			pix[off+0] = premul(c.R, c.A)
			pix[off+1] = premul(c.G, c.A)
			pix[off+2] = premul(c.B, c.A)
			pix[off+3] = premul(1, c.A)
		}
	}
	return pix
}

func premul(v, a float64) uint8 {
	p := v * a
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 255
	}
	return uint8(p*255 + 0.5)
}
