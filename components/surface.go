package components

import (
	"github.com/automoto/stardrift/render"
	"github.com/yohamta/donburi"
)

// SurfaceData is the drawing surface a scene paints onto, plus the
// persistent off-screen layer holding the static horizon.
type SurfaceData struct {
	Canvas  render.Canvas
	Width   float64
	Height  float64
	Horizon render.Canvas // nil when the scene has no horizon
}

var Surface = donburi.NewComponentType[SurfaceData]()
