package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gradientBand is the height in pixels of one solid gradient strip.
const gradientBand = 2

// Screen adapts an *ebiten.Image to Canvas.
type Screen struct {
	img *ebiten.Image
}

// NewScreen wraps img. A nil image yields a nil Canvas so callers can treat a
// missing surface uniformly.
func NewScreen(img *ebiten.Image) Canvas {
	if img == nil {
		return nil
	}
	return &Screen{img: img}
}

// NewImage allocates an off-screen surface of the given size.
func NewImage(width, height int) Canvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Screen{img: ebiten.NewImage(width, height)}
}

func (s *Screen) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) FillGradient(x, y, w, h float32, top, bottom color.RGBA) {
	if h <= 0 {
		return
	}
	for off := float32(0); off < h; off += gradientBand {
		band := float32(gradientBand)
		if off+band > h {
			band = h - off
		}
		t := float64((off + band/2) / h)
		vector.FillRect(s.img, x, y+off, w, band, LerpColor(top, bottom, t), false)
	}
}

func (s *Screen) FillRect(x, y, w, h float32, clr color.RGBA) {
	vector.FillRect(s.img, x, y, w, h, clr, false)
}

func (s *Screen) FillCircle(cx, cy, r float32, clr color.RGBA) {
	vector.FillCircle(s.img, cx, cy, r, clr, true)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA) {
	vector.StrokeLine(s.img, x0, y0, x1, y1, width, clr, true)
}

func (s *Screen) NewLayer(width, height int) Canvas {
	return NewImage(width, height)
}

func (s *Screen) Blit(layer Canvas) {
	src, ok := layer.(*Screen)
	if !ok || src == nil {
		return
	}
	s.img.DrawImage(src.img, nil)
}

// Present copies the surface onto the window image.
func Present(dst *ebiten.Image, surface Canvas) {
	src, ok := surface.(*Screen)
	if !ok || src == nil || dst == nil {
		return
	}
	dst.DrawImage(src.img, nil)
}

// Clear resets the surface to transparent.
func Clear(surface Canvas) {
	if s, ok := surface.(*Screen); ok && s != nil {
		s.img.Clear()
	}
}
