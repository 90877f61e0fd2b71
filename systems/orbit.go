package systems

import (
	"math"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"gonum.org/v1/gonum/spatial/r3"
)

// ringSegments is the number of line segments approximating an orbit ring.
const ringSegments = 96

// PlanetSelected is published when the pointer clicks a planet.
type PlanetSelected struct {
	Target r3.Vec
	Info   *cfg.PlanetInfo
}

var PlanetSelectedEvents = events.NewEventType[PlanetSelected]()

func camera(w donburi.World) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// UpdateOrbits advances each moving planet along its circular orbit and
// moves its pick box to the projected position.
func UpdateOrbits(ecs *ecs.ECS) {
	cam, ok := camera(ecs.World)
	if !ok {
		return
	}
	dt := 1.0 / float64(cfg.C.TPS)

	components.Planet.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Planet.Get(e)
		if p.Config.Speed != 0 {
			p.Angle += p.Config.Speed * dt
			p.Position = r3.Vec{
				X: math.Cos(p.Angle) * p.Orbit,
				Y: p.Config.Position[1],
				Z: math.Sin(p.Angle) * p.Orbit,
			}
		}

		obj := components.Object.Get(e)
		sx, sy := cam.Project(p.Position)
		r := planetRadius(e)
		obj.X = sx - r
		obj.Y = sy - r
		obj.W = 2 * r
		obj.H = 2 * r
		obj.Update()
	})
}

// planetRadius is the on-screen radius including the hover pulse.
func planetRadius(e *donburi.Entry) float64 {
	p := components.Planet.Get(e)
	scale := 1.0
	if e.HasComponent(components.Hover) {
		scale = components.Hover.Get(e).Scale
	}
	return p.Config.Size * cfg.OrbitView.Scale * scale
}

// UpdatePicking moves the pointer object to the cursor, resolves which planet
// is under it and publishes a selection on click.
func UpdatePicking(ecs *ecs.ECS) {
	pointerEntry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	cam, ok := camera(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(inputEntry)
	pointer := components.Pointer.Get(pointerEntry)

	obj := components.Object.Get(pointerEntry)
	obj.X = float64(in.CursorX)
	obj.Y = float64(in.CursorY)
	obj.Update()

	var hit *donburi.Entry
	best := math.Inf(1)
	if check := obj.Check(0, 0, tags.ResolvPlanet); check != nil {
		for _, o := range check.Objects {
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || !entry.Valid() {
				continue
			}
			sx, sy := cam.Project(components.Planet.Get(entry).Position)
			d := math.Hypot(obj.X-sx, obj.Y-sy)
			if d <= planetRadius(entry) && d < best {
				hit, best = entry, d
			}
		}
	}

	components.Planet.Each(ecs.World, func(e *donburi.Entry) {
		SetHovered(e, e == hit)
	})
	pointer.Hovered = hit

	if hit != nil && in.PointerClicked {
		p := components.Planet.Get(hit)
		PlanetSelectedEvents.Publish(ecs.World, PlanetSelected{
			Target: p.Position,
			Info:   &p.Config.Info,
		})
	}
}

// SetHovered starts a scale tween when a planet's hover state flips.
func SetHovered(e *donburi.Entry, hovered bool) {
	h := components.Hover.Get(e)
	if h.Hovered == hovered {
		return
	}
	h.Hovered = hovered
	to := 1.0
	if hovered {
		to = cfg.OrbitView.HoverScale
	}
	h.Tween = gween.New(float32(h.Scale), float32(to), cfg.OrbitView.HoverDuration, ease.OutQuad)
}

// UpdateHover advances running hover tweens.
func UpdateHover(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TPS))
	components.Hover.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hover.Get(e)
		if h.Tween == nil {
			return
		}
		v, done := h.Tween.Update(dt)
		h.Scale = float64(v)
		if done {
			h.Tween = nil
		}
	})
}

// DrawOrbitView renders the orbit rings and planets.
func DrawOrbitView(ecs *ecs.ECS, screen *ebiten.Image) {
	PaintOrbitView(ecs.World, render.NewScreen(screen))
}

func PaintOrbitView(w donburi.World, c render.Canvas) {
	cam, ok := camera(w)
	if !ok || render.IsZero(c) {
		return
	}
	ov := cfg.OrbitView

	ox, oy := cam.Project(r3.Vec{})
	for _, radius := range ov.Rings {
		r := radius * cam.Scale
		for i := 0; i < ringSegments; i++ {
			a0 := 2 * math.Pi * float64(i) / ringSegments
			a1 := 2 * math.Pi * float64(i+1) / ringSegments
			c.StrokeLine(
				float32(ox+math.Cos(a0)*r), float32(oy+math.Sin(a0)*r),
				float32(ox+math.Cos(a1)*r), float32(oy+math.Sin(a1)*r),
				1, ov.RingColor)
		}
	}

	components.Planet.Each(w, func(e *donburi.Entry) {
		p := components.Planet.Get(e)
		sx, sy := cam.Project(p.Position)
		r := planetRadius(e)
		if components.Hover.Get(e).Hovered {
			c.FillCircle(float32(sx), float32(sy), float32(r+4), render.WithAlpha(cfg.White, 0.25))
		}
		c.FillCircle(float32(sx), float32(sy), float32(r), p.Config.Color)
	})
}
