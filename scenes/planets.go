package scenes

import (
	"log"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/scheduler"
	"github.com/automoto/stardrift/systems"
	"github.com/automoto/stardrift/systems/factory"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// PlanetsScene is the planet viewer: a dim twinkling backdrop with streaks,
// the orbit view and the focus easer that pans the camera to a selection.
type PlanetsScene struct {
	lifecycle

	focus     *donburi.Entry
	focusLoop *scheduler.Handle
	onSelect  func(w donburi.World, ev systems.PlanetSelected)
	listening bool

	// OnInfo receives the descriptive record of each selection.
	OnInfo func(info *cfg.PlanetInfo)
}

func NewPlanetsScene(sched *scheduler.Scheduler, opts Options) *PlanetsScene {
	return &PlanetsScene{lifecycle: newLifecycle("planets", sched, opts)}
}

func (p *PlanetsScene) Page() cfg.Page { return cfg.PagePlanets }

func (p *PlanetsScene) Start(surface render.Canvas) {
	if !p.begin(surface, false) {
		return
	}
	w, h := p.surfaceSize()

	factory.CreateField(p.ecs, &cfg.StreakStars, w, h, p.rng)
	twinkle := factory.CreateField(p.ecs, &cfg.DimTwinkle, w, h, p.rng)

	p.focus = factory.CreateFocus(p.ecs, w, h)
	space := factory.CreatePickSpace(p.ecs, int(w), int(h))
	for i := range cfg.Planets {
		factory.CreatePlanet(p.ecs, components.Space.Get(space), &cfg.Planets[i])
	}

	p.ecs.AddSystem(p.opts.Input)
	p.ecs.AddSystem(systems.UpdateOrbits)
	p.ecs.AddSystem(systems.UpdatePicking)
	p.ecs.AddSystem(systems.ProcessEvents)
	p.ecs.AddSystem(systems.UpdateHover)
	p.ecs.AddSystem(systems.UpdateFields)
	p.ecs.AddRenderer(cfg.LayerBackdrop, systems.DrawFrame)
	p.ecs.AddRenderer(cfg.LayerScene, systems.DrawOrbitView)

	p.onSelect = func(_ donburi.World, ev systems.PlanetSelected) {
		p.Select(ev.Target, ev.Info)
	}
	systems.PlanetSelectedEvents.Subscribe(p.ecs.World, p.onSelect)
	p.listening = true

	p.loop()
	p.refill(twinkle)
	log.Printf("[planets] started %.0fx%.0f, %d bodies", w, h, len(cfg.Planets))
}

// Select eases the camera toward target. A selection in flight is
// superseded from the currently published point; the step loop is shared.
func (p *PlanetsScene) Select(target r3.Vec, info *cfg.PlanetInfo) {
	if !p.running {
		return
	}
	f := components.Focus.Get(p.focus)
	systems.SelectFocus(f, target, info)
	if p.OnInfo != nil && info != nil {
		p.OnInfo(info)
	}
	if p.focusLoop.Active() {
		return
	}
	p.focusLoop = p.sched.Loop(p.stepFocus)
}

// stepFocus is one easing step; it cancels its own loop once converged.
func (p *PlanetsScene) stepFocus() {
	f := components.Focus.Get(p.focus)
	inFlight := systems.StepFocus(f, cfg.Focus.Increment)
	systems.Publish(f, components.Camera.Get(p.focus))
	if !inFlight {
		p.focusLoop.Cancel()
	}
}

func (p *PlanetsScene) Stop() {
	if !p.end() {
		return
	}
	p.focusLoop.Cancel()
	p.focusLoop = nil
	if p.listening {
		systems.PlanetSelectedEvents.Unsubscribe(p.ecs.World, p.onSelect)
		p.listening = false
	}
}

// Focus returns the focus state, nil before the first start.
func (p *PlanetsScene) Focus() *components.FocusData {
	if p.focus == nil {
		return nil
	}
	return components.Focus.Get(p.focus)
}

// FocusLoopActive reports whether the easing step loop is registered.
func (p *PlanetsScene) FocusLoopActive() bool { return p.focusLoop.Active() }
