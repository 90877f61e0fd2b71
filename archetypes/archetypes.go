package archetypes

import (
	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Field = newArchetype(
		tags.Field,
		components.Field,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	// Shooting particles carry a trail; ambient ones don't.
	TrailedParticle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Trail,
	)
	Surface = newArchetype(
		components.Surface,
	)
	Random = newArchetype(
		components.Random,
	)
	Input = newArchetype(
		components.Input,
	)
	Scroll = newArchetype(
		components.Scroll,
	)
	Focus = newArchetype(
		components.Focus,
		components.Camera,
	)
	Planet = newArchetype(
		tags.Planet,
		components.Planet,
		components.Object,
		components.Hover,
	)
	Space = newArchetype(
		components.Space,
	)
	Pointer = newArchetype(
		components.Pointer,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerScene,
		append(a.components, cs...)...,
	))
	return e
}
