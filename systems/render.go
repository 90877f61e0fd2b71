package systems

import (
	"image/color"
	"math"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// glowRings is the number of translucent rings approximating a blur.
	glowRings = 4
	glowAlpha = 0.12

	// horizonGlowStep is the spacing in pixels between horizon glow shells.
	horizonGlowStep  = 4
	horizonGlowAlpha = 0.03
)

// DrawFrame is the scene renderer: it paints the frame onto the off-screen
// surface and presents it.
func DrawFrame(ecs *ecs.ECS, screen *ebiten.Image) {
	surface, ok := components.Surface.First(ecs.World)
	if !ok {
		return
	}
	PaintFrame(ecs.World)
	render.Present(screen, components.Surface.Get(surface).Canvas)
}

// PaintFrame paints every field onto the surface in a fixed order:
// background, horizon, trails, shooting heads, ambient particles. It never
// mutates the model.
func PaintFrame(w donburi.World) {
	entry, ok := components.Surface.First(w)
	if !ok {
		return
	}
	surface := components.Surface.Get(entry)
	c := surface.Canvas
	if render.IsZero(c) {
		return
	}

	paintBackground(c, surface)
	if surface.Horizon != nil {
		c.Blit(surface.Horizon)
	}

	fields := fieldsOf(w)
	particles := make([][]*donburi.Entry, len(fields))
	for i, f := range fields {
		particles[i] = FieldParticles(w, f)
	}
	for i, f := range fields {
		paintTrails(c, f, particles[i])
	}
	for i, f := range fields {
		paintHeads(c, f, particles[i])
	}
	for i, f := range fields {
		paintAmbient(c, f, particles[i])
	}
}

func fieldsOf(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	components.Field.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func paintBackground(c render.Canvas, s *components.SurfaceData) {
	c.FillGradient(0, 0, float32(s.Width), float32(s.Height), cfg.Background.Top, cfg.Background.Bottom)
}

// paintTrails strokes each trail oldest segment first; segment i fades in as
// (i / len) * alpha.
func paintTrails(c render.Canvas, field *donburi.Entry, particles []*donburi.Entry) {
	fc := components.Field.Get(field).Config
	if fc.TrailCap == 0 {
		return
	}
	for _, e := range particles {
		p := components.Particle.Get(e)
		if p.Mode != cfg.ModeShootingActive || !e.HasComponent(components.Trail) {
			continue
		}
		trail := components.Trail.Get(e)
		n := trail.Len()
		for i := 0; i+1 < n; i++ {
			a, b := trail.At(i), trail.At(i+1)
			segAlpha := float64(i) / float64(n) * p.Alpha
			c.StrokeLine(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				float32(fc.TrailWidth), render.WithAlpha(fc.Color, segAlpha))
		}
	}
}

// paintHeads draws moving particles with a glow that shrinks as they fade.
func paintHeads(c render.Canvas, field *donburi.Entry, particles []*donburi.Entry) {
	fc := components.Field.Get(field).Config
	scale := fc.HeadScale
	if scale <= 0 {
		scale = 1
	}
	for _, e := range particles {
		p := components.Particle.Get(e)
		if p.Mode != cfg.ModeShootingActive {
			continue
		}
		x, y := float32(p.Position.X), float32(p.Position.Y)
		r := p.Radius * scale

		if blur := fc.GlowBlur * p.Alpha; blur > 0 {
			for i := glowRings; i >= 1; i-- {
				gr := r + blur*float64(i)/glowRings
				c.FillCircle(x, y, float32(gr), render.WithAlpha(fc.Color, p.Alpha*glowAlpha))
			}
		}
		c.FillCircle(x, y, float32(r), render.WithAlpha(fc.Color, p.Alpha))
	}
}

func paintAmbient(c render.Canvas, field *donburi.Entry, particles []*donburi.Entry) {
	fc := components.Field.Get(field).Config
	for _, e := range particles {
		p := components.Particle.Get(e)
		if p.Mode != cfg.ModeAmbient {
			continue
		}
		c.FillCircle(float32(p.Position.X), float32(p.Position.Y), float32(p.Radius),
			render.WithAlpha(fc.Color, p.Alpha))
	}
}

// PaintHorizon paints the static planet curve into layer: the upper half of
// a wide ellipse centered below the bottom edge, filled with a vertical
// gradient and ringed by a soft glow. Called once per surface.
func PaintHorizon(layer render.Canvas) {
	if render.IsZero(layer) {
		return
	}
	iw, ih := layer.Size()
	width, height := float64(iw), float64(ih)
	h := cfg.Horizon

	ry := height * h.HeightFrac
	rx := width * h.WidthFrac
	cx := width / 2
	cy := height + ry*h.CenterDrop
	gradTop := height * h.GradientStartY

	// Glow shells from the outside in; their overlap brightens toward the edge.
	for grow := h.GlowBlur; grow > 0; grow -= horizonGlowStep {
		fillHalfEllipse(layer, cx, cy, rx+grow, ry+grow, height, func(float64) color.RGBA {
			return render.WithAlpha(h.GlowColor, horizonGlowAlpha)
		})
	}

	fillHalfEllipse(layer, cx, cy, rx, ry, height, func(y float64) color.RGBA {
		return render.LerpColor(h.Top, h.Bottom, (y-gradTop)/(height-gradTop))
	})
}

// fillHalfEllipse fills the rows of the ellipse above its center, down to
// the bottom edge, one pixel row per rect.
func fillHalfEllipse(c render.Canvas, cx, cy, rx, ry, bottom float64, shade func(y float64) color.RGBA) {
	top := math.Max(0, math.Floor(cy-ry))
	for y := top; y < bottom && y < cy; y++ {
		dy := (cy - (y + 0.5)) / ry
		if dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		c.FillRect(float32(cx-half), float32(y), float32(2*half), 1, shade(y))
	}
}
