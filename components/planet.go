package components

import (
	"github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type PlanetData struct {
	Config   *config.PlanetConfig
	Orbit    float64 // distance from the origin in the orbital plane
	Angle    float64 // radians
	Position r3.Vec  // current orbital position
}

var Planet = donburi.NewComponentType[PlanetData]()

// PointerData marks the resolv object that follows the cursor for picking.
type PointerData struct {
	Hovered *donburi.Entry // planet under the cursor, nil when none
}

var Pointer = donburi.NewComponentType[PointerData]()
