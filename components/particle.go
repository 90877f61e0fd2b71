package components

import (
	"github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is the unit entity of every animated field.
type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2 // zero unless moving
	Radius   float64
	Alpha    float64
	Mode     config.ParticleMode

	Field donburi.Entity // owning field entity
	Seq   uint64         // spawn order within the field, used for oldest-first eviction
}

var Particle = donburi.NewComponentType[ParticleData]()
