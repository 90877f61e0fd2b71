package tags

import "github.com/yohamta/donburi"

var (
	Particle = donburi.NewTag().SetName("Particle")
	Field    = donburi.NewTag().SetName("Field")
	Planet   = donburi.NewTag().SetName("Planet")
)

// Resolv tags for pointer picking
const (
	ResolvPlanet  = "planet"
	ResolvPointer = "pointer"
)
