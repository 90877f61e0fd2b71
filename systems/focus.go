package systems

import (
	"log"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"gonum.org/v1/gonum/spatial/r3"
)

// doneEpsilon absorbs float drift from accumulating the fixed increment.
const doneEpsilon = 1e-9

// OrbitTarget consumes the published look-at point every step.
type OrbitTarget interface {
	SetTarget(x, y, z float64)
}

// SelectFocus starts easing toward target from the currently published
// look-at. A task already in flight is superseded, not rolled back.
func SelectFocus(f *components.FocusData, target r3.Vec, info *cfg.PlanetInfo) {
	f.Task = &components.FocusTask{
		Start:  f.LookAt,
		Target: target,
	}
	f.Info = info
	if info != nil {
		log.Printf("[focus] %s at (%.2f, %.2f, %.2f)", info.Name, target.X, target.Y, target.Z)
	}
}

// StepFocus advances the active task by increment and publishes the new
// look-at. On completion the target is published exactly and the task is
// cleared. It reports whether a task is still in flight.
func StepFocus(f *components.FocusData, increment float64) bool {
	task := f.Task
	if task == nil {
		return false
	}

	task.Progress = clamp(task.Progress+increment, 0, 1)
	if task.Progress >= 1-doneEpsilon {
		f.LookAt = task.Target
		f.Task = nil
		return false
	}

	p := task.Progress
	if f.Easing != nil {
		p = float64(f.Easing(float32(p), 0, 1, 1))
	}
	f.LookAt = r3.Add(task.Start, r3.Scale(p, r3.Sub(task.Target, task.Start)))
	return true
}

// Publish pushes the current look-at to the orbit controller.
func Publish(f *components.FocusData, sink OrbitTarget) {
	if sink == nil {
		return
	}
	sink.SetTarget(f.LookAt.X, f.LookAt.Y, f.LookAt.Z)
}
