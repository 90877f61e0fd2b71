package components

import (
	"github.com/automoto/stardrift/config"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// FocusTask is a transient interpolation of the look-at target.
type FocusTask struct {
	Start    r3.Vec
	Target   r3.Vec
	Progress float64 // [0,1]
}

// FocusData holds the published look-at target consumed by the orbit camera.
type FocusData struct {
	LookAt r3.Vec
	Task   *FocusTask // nil once converged
	Easing ease.TweenFunc
	Info   *config.PlanetInfo // last selected body
}

var Focus = donburi.NewComponentType[FocusData]()

// CameraData is the flat orbit camera: it centers the view on the published
// look-at target and projects the orbital (X, Z) plane onto the screen.
type CameraData struct {
	Target  r3.Vec
	Scale   float64 // pixels per world unit
	CenterX float64
	CenterY float64
}

// SetTarget receives the look-at point from the focus easer.
func (c *CameraData) SetTarget(x, y, z float64) {
	c.Target = r3.Vec{X: x, Y: y, Z: z}
}

// Project maps a world position to screen coordinates.
func (c *CameraData) Project(v r3.Vec) (float64, float64) {
	return c.CenterX + (v.X-c.Target.X)*c.Scale, c.CenterY + (v.Z-c.Target.Z)*c.Scale
}

var Camera = donburi.NewComponentType[CameraData]()
