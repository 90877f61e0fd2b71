package systems

import (
	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFields advances every particle field by one frame.
func UpdateFields(e *ecs.ECS) {
	var fields []*donburi.Entry
	components.Field.Each(e.World, func(entry *donburi.Entry) {
		fields = append(fields, entry)
	})
	for _, field := range fields {
		StepField(e, field)
	}
}

// StepField advances the particles of one field. Particles that leave the
// field are collected first and removed after the pass; closed populations
// get their replacements in the same step.
func StepField(e *ecs.ECS, field *donburi.Entry) {
	fd := components.Field.Get(field)
	fc := fd.Config
	rng := randomSource(e.World)

	var toPark, toRemove []*donburi.Entry
	replacements := 0

	for _, entry := range FieldParticles(e.World, field) {
		p := components.Particle.Get(entry)
		switch p.Mode {
		case cfg.ModeAmbient:
			if fc.BlinkSpeed > 0 {
				p.Alpha += (rng.Float64()*2 - 1) * fc.BlinkSpeed
			}
			p.Alpha = clamp(p.Alpha, fc.AlphaFloor, fc.AlphaCeil)
			p.Position = p.Position.Add(p.Velocity)

			if fc.Replace && p.Alpha <= fc.ReplaceBelow {
				toRemove = append(toRemove, entry)
				replacements++
			} else if fc.RemoveOffscreen && IsOffscreen(p, fd.Width, fd.Height, fc.Margin) {
				toRemove = append(toRemove, entry)
			}

		case cfg.ModeShootingIdle:
			if rng.Float64() < fc.TriggerProbability {
				activate(entry, p, fd, rng)
			}

		case cfg.ModeShootingActive:
			p.Position = p.Position.Add(p.Velocity)
			p.Alpha = clamp(p.Alpha-fc.DecayRate, fc.AlphaFloor, fc.AlphaCeil)
			if entry.HasComponent(components.Trail) {
				components.Trail.Get(entry).Push(p.Position)
			}

			if IsExhausted(p) || IsOffscreen(p, fd.Width, fd.Height, fc.Margin) {
				if fc.RemoveOnExit {
					toRemove = append(toRemove, entry)
				} else {
					toPark = append(toPark, entry)
				}
			}
		}
	}

	for _, entry := range toPark {
		park(entry, fc)
	}
	removeParticles(e.World, field, toRemove)
	for i := 0; i < replacements; i++ {
		replace(e, field, rng)
	}
}
