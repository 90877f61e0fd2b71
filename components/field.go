package components

import (
	"github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
)

// FieldData describes one particle field. Particles point back at the field
// entity through ParticleData.Field and never move between fields.
type FieldData struct {
	Config *config.FieldConfig
	Width  float64 // surface bounds, read once at start
	Height float64
	// Particles lists the owned particle entities in spawn order.
	Particles []donburi.Entity
	// NextSeq numbers spawned particles so the cap can evict the oldest.
	NextSeq uint64
	// Evicted counts particles dropped by the cap.
	Evicted int
}

// Adopt records a newly spawned particle.
func (f *FieldData) Adopt(id donburi.Entity) {
	f.Particles = append(f.Particles, id)
}

// Forget drops the given particles from the field, keeping spawn order.
func (f *FieldData) Forget(ids ...donburi.Entity) {
	if len(ids) == 0 {
		return
	}
	gone := make(map[donburi.Entity]struct{}, len(ids))
	for _, id := range ids {
		gone[id] = struct{}{}
	}
	kept := f.Particles[:0]
	for _, id := range f.Particles {
		if _, ok := gone[id]; !ok {
			kept = append(kept, id)
		}
	}
	f.Particles = kept
}

var Field = donburi.NewComponentType[FieldData]()
