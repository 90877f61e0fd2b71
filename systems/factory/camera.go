package factory

import (
	"github.com/automoto/stardrift/archetypes"
	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateFocus creates the look-at focus at the configured initial target,
// together with the orbit camera that consumes it, centered on the surface.
func CreateFocus(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	focus := archetypes.Focus.Spawn(ecs)
	t := cfg.Focus.InitialTarget
	lookAt := r3.Vec{X: t[0], Y: t[1], Z: t[2]}
	components.Focus.SetValue(focus, components.FocusData{
		LookAt: lookAt,
		Easing: cfg.Focus.Easing,
	})
	components.Camera.SetValue(focus, components.CameraData{
		Target:  lookAt,
		Scale:   cfg.OrbitView.Scale,
		CenterX: width / 2,
		CenterY: height / 2,
	})
	return focus
}
