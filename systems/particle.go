package systems

import (
	"math/rand/v2"

	"github.com/automoto/stardrift/components"
	"github.com/yohamta/donburi"
)

// IsOffscreen reports whether p lies outside the surface grown by margin on
// every side.
func IsOffscreen(p *components.ParticleData, width, height, margin float64) bool {
	return p.Position.X < -margin || p.Position.X > width+margin ||
		p.Position.Y < -margin || p.Position.Y > height+margin
}

// IsExhausted reports whether p has faded out completely.
func IsExhausted(p *components.ParticleData) bool {
	return p.Alpha <= 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FieldParticles returns the particle entries owned by field, oldest first.
func FieldParticles(w donburi.World, field *donburi.Entry) []*donburi.Entry {
	ids := components.Field.Get(field).Particles
	out := make([]*donburi.Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.Entry(id))
	}
	return out
}

// FieldCount returns the number of particles owned by field.
func FieldCount(w donburi.World, field *donburi.Entry) int {
	return len(components.Field.Get(field).Particles)
}

// removeParticles deletes entries from the world and from field.
func removeParticles(w donburi.World, field *donburi.Entry, entries []*donburi.Entry) {
	if len(entries) == 0 {
		return
	}
	ids := make([]donburi.Entity, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.Entity())
		w.Remove(entry.Entity())
	}
	components.Field.Get(field).Forget(ids...)
}

// FindField returns the field entity with the given config name.
func FindField(w donburi.World, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Field.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Field.Get(e).Config.Name == name {
			found = e
		}
	})
	return found, found != nil
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// randomSource returns the world's installed source, falling back to the
// process-wide generator.
func randomSource(w donburi.World) components.RandomSource {
	if e, ok := components.Random.First(w); ok {
		if src := components.Random.Get(e).Source; src != nil {
			return src
		}
	}
	return globalRandom{}
}
