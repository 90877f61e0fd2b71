package systems

import (
	"log"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnPeriodic creates one ambient particle if the field is below its
// target count. It is driven by the scene's interval timer.
func SpawnPeriodic(e *ecs.ECS, field *donburi.Entry) bool {
	fc := components.Field.Get(field).Config
	if FieldCount(e.World, field) >= fc.TargetCount {
		return false
	}
	factory.CreateParticle(e, field, randomSource(e.World))
	return true
}

// SpawnBurst appends one batch to a burst field and returns the number of
// particles added. When the field has a cap, the oldest particles are
// evicted so the whole batch always lands.
func SpawnBurst(e *ecs.ECS, field *donburi.Entry) int {
	fc := components.Field.Get(field).Config
	rng := randomSource(e.World)
	for i := 0; i < fc.BurstSize; i++ {
		factory.CreateParticle(e, field, rng)
	}
	evictOldest(e, field)
	return fc.BurstSize
}

func evictOldest(e *ecs.ECS, field *donburi.Entry) {
	fd := components.Field.Get(field)
	limit := fd.Config.MaxParticles
	if limit <= 0 {
		return
	}
	excess := FieldCount(e.World, field) - limit
	if excess <= 0 {
		return
	}

	if fd.Evicted == 0 {
		log.Printf("[%s] particle cap %d reached, evicting oldest", fd.Config.Name, limit)
	}
	// Particles are kept in spawn order.
	removeParticles(e.World, field, FieldParticles(e.World, field)[:excess])
	fd.Evicted += excess
}

// activate launches an idle shooting particle from a random origin.
func activate(entry *donburi.Entry, p *components.ParticleData, fd *components.FieldData, rng components.RandomSource) {
	fc := fd.Config
	p.Mode = cfg.ModeShootingActive
	p.Position = factory.RandomOrigin(fd, rng)
	p.Velocity = math.Vec2{
		X: fc.VelocityX.Lerp(rng.Float64()),
		Y: fc.VelocityY.Lerp(rng.Float64()),
	}
	p.Alpha = 1
	if entry.HasComponent(components.Trail) {
		components.Trail.Get(entry).Clear()
	}
}

// park returns a shooting particle to idle: off-surface, motionless, no trail.
func park(entry *donburi.Entry, fc *cfg.FieldConfig) {
	p := components.Particle.Get(entry)
	p.Mode = cfg.ModeShootingIdle
	p.Position = math.Vec2{X: fc.ParkX, Y: fc.ParkY}
	p.Velocity = math.Vec2{}
	p.Alpha = 1
	if entry.HasComponent(components.Trail) {
		components.Trail.Get(entry).Clear()
	}
}

// replace spawns a fresh ambient particle for one that faded out. The
// replacement starts at a random phase no lower than ReplaceAlpha and at least
// two blink steps above ReplaceBelow, so it cannot be replaced again on the
// next frame.
func replace(e *ecs.ECS, field *donburi.Entry, rng components.RandomSource) {
	fc := components.Field.Get(field).Config
	p := components.Particle.Get(factory.CreateParticle(e, field, rng))
	p.Alpha = clamp(max(p.Alpha, fc.ReplaceAlpha, fc.ReplaceBelow+2*fc.BlinkSpeed), fc.AlphaFloor, fc.AlphaCeil)
}
