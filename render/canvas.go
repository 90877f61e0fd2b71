// Package render defines the 2D drawing surface the painters write to.
package render

import "image/color"

// Canvas is a 2D drawing surface. Coordinates are in pixels with the origin at
// the top-left corner.
type Canvas interface {
	Size() (width, height int)
	// FillGradient fills a rectangle with a vertical two-stop gradient.
	FillGradient(x, y, w, h float32, top, bottom color.RGBA)
	FillRect(x, y, w, h float32, clr color.RGBA)
	FillCircle(cx, cy, r float32, clr color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA)
	// NewLayer allocates an off-screen canvas that can later be composited
	// onto this one with Blit.
	NewLayer(width, height int) Canvas
	Blit(layer Canvas)
}

// WithAlpha scales the alpha channel of clr by a in [0,1]. Colors are treated
// as straight alpha.
func WithAlpha(clr color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	clr.A = uint8(float64(clr.A)*a + 0.5)
	return clr
}

// LerpColor interpolates between two colors.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// IsZero reports whether c is missing or has no drawable area.
func IsZero(c Canvas) bool {
	if c == nil {
		return true
	}
	w, h := c.Size()
	return w <= 0 || h <= 0
}
