package factory

import (
	"github.com/automoto/stardrift/archetypes"
	"github.com/automoto/stardrift/components"
	"github.com/automoto/stardrift/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSurface records the drawing surface and its size. When withHorizon
// is set, an off-screen layer of the same size is allocated for the static
// horizon; the caller paints it once.
func CreateSurface(ecs *ecs.ECS, canvas render.Canvas, withHorizon bool) *donburi.Entry {
	w, h := canvas.Size()
	surface := archetypes.Surface.Spawn(ecs)
	data := components.SurfaceData{
		Canvas: canvas,
		Width:  float64(w),
		Height: float64(h),
	}
	if withHorizon {
		data.Horizon = canvas.NewLayer(w, h)
	}
	components.Surface.SetValue(surface, data)
	return surface
}

// CreateRandom installs the scene's random source.
func CreateRandom(ecs *ecs.ECS, src components.RandomSource) *donburi.Entry {
	r := archetypes.Random.Spawn(ecs)
	components.Random.SetValue(r, components.RandomData{Source: src})
	return r
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateScroll tracks a scroll region of the given number of sections, each
// one viewport tall.
func CreateScroll(ecs *ecs.ECS, viewportHeight float64, sections int) *donburi.Entry {
	s := archetypes.Scroll.Spawn(ecs)
	components.Scroll.SetValue(s, components.ScrollData{
		ViewportHeight: viewportHeight,
		Sections:       sections,
	})
	return s
}
