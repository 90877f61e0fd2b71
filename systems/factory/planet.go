package factory

import (
	"math"

	"github.com/automoto/stardrift/archetypes"
	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickSpace creates the resolv space used for pointer picking, plus the
// pointer object that lives in it.
func CreatePickSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	cell := cfg.OrbitView.PickCell
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cell, cell))

	pointer := archetypes.Pointer.Spawn(ecs)
	obj := resolv.NewObject(0, 0, 1, 1)
	obj.AddTags(tags.ResolvPointer)
	obj.Data = pointer
	components.Object.SetValue(pointer, components.ObjectData{Object: obj})
	components.Space.Get(space).Add(obj)
	return space
}

// CreatePlanet adds one body to the orbit view. Its pick box is positioned by
// the orbit system every frame.
func CreatePlanet(ecs *ecs.ECS, space *resolv.Space, pc *cfg.PlanetConfig) *donburi.Entry {
	planet := archetypes.Planet.Spawn(ecs)

	pos := pc.Vec()
	components.Planet.SetValue(planet, components.PlanetData{
		Config:   pc,
		Orbit:    math.Hypot(pos.X, pos.Z),
		Angle:    math.Atan2(pos.Z, pos.X),
		Position: pos,
	})

	size := pc.Size * 2 * cfg.OrbitView.Scale
	obj := resolv.NewObject(0, 0, size, size)
	obj.AddTags(tags.ResolvPlanet)
	obj.Data = planet
	components.Object.SetValue(planet, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Hover.SetValue(planet, components.HoverData{Scale: 1})
	return planet
}
