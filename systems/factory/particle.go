package factory

import (
	"github.com/automoto/stardrift/archetypes"
	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateField builds a field entity sized to the surface and spawns its
// initial population.
func CreateField(ecs *ecs.ECS, fc *cfg.FieldConfig, width, height float64, rng components.RandomSource) *donburi.Entry {
	field := archetypes.Field.Spawn(ecs)
	components.Field.SetValue(field, components.FieldData{
		Config: fc,
		Width:  width,
		Height: height,
	})

	for i := 0; i < fc.InitialCount; i++ {
		CreateParticle(ecs, field, rng)
	}
	return field
}

// CreateParticle spawns one particle in the starting mode of the field's
// policy. Probabilistic fields start parked and idle, periodic fields start
// ambient and burst fields start already moving.
func CreateParticle(ecs *ecs.ECS, field *donburi.Entry, rng components.RandomSource) *donburi.Entry {
	fd := components.Field.Get(field)
	fc := fd.Config

	var p *donburi.Entry
	if fc.TrailCap > 0 {
		p = archetypes.TrailedParticle.Spawn(ecs)
		components.Trail.SetValue(p, *components.NewTrail(fc.TrailCap))
	} else {
		p = archetypes.Particle.Spawn(ecs)
	}

	data := components.ParticleData{
		Radius: fc.Radius.Lerp(rng.Float64()),
		Field:  field.Entity(),
		Seq:    fd.NextSeq,
	}
	fd.NextSeq++
	fd.Adopt(p.Entity())

	switch fc.Policy {
	case cfg.SpawnProbabilistic:
		data.Mode = cfg.ModeShootingIdle
		data.Position = math.Vec2{X: fc.ParkX, Y: fc.ParkY}
		data.Alpha = 1
	case cfg.SpawnBurst:
		data.Mode = cfg.ModeShootingActive
		data.Position = RandomOrigin(fd, rng)
		s := fc.Speed.Lerp(rng.Float64())
		data.Velocity = math.Vec2{X: s, Y: -s}
		data.Alpha = fc.InitialAlpha.Lerp(rng.Float64())
	default:
		data.Mode = cfg.ModeAmbient
		data.Position = RandomOrigin(fd, rng)
		data.Alpha = fc.InitialAlpha.Lerp(rng.Float64())
		if fc.DriftFactor > 0 {
			data.Velocity = math.Vec2{X: fc.Speed.Lerp(rng.Float64()) * fc.DriftFactor}
		}
	}

	components.Particle.SetValue(p, data)
	return p
}

// RandomOrigin samples a point in the field's origin rectangle.
func RandomOrigin(fd *components.FieldData, rng components.RandomSource) math.Vec2 {
	fc := fd.Config
	return math.Vec2{
		X: fc.OriginX.Lerp(rng.Float64()) * fd.Width,
		Y: fc.OriginY.Lerp(rng.Float64()) * fd.Height,
	}
}
