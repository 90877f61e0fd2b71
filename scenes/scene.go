package scenes

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/scheduler"
	"github.com/automoto/stardrift/systems"
	"github.com/automoto/stardrift/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one mountable page. Start and Stop are idempotent; Stop releases
// every loop, timer and listener Start acquired.
type Scene interface {
	Page() cfg.Page
	Start(surface render.Canvas)
	Stop()
	Running() bool
	Draw(screen *ebiten.Image)
}

// Options tune a scene. Zero values select the defaults.
type Options struct {
	// Seed seeds the scene's generator; 0 picks a random seed.
	Seed uint64
	// Random overrides the seeded generator.
	Random components.RandomSource
	// Input polls raw input each frame. Defaults to systems.UpdateInput.
	Input func(*ecs.ECS)
}

// New builds the scene for page.
func New(page cfg.Page, sched *scheduler.Scheduler, opts Options) Scene {
	switch page {
	case cfg.PagePlanets:
		return NewPlanetsScene(sched, opts)
	case cfg.PageTimeline:
		return NewTimelineScene(sched, opts)
	}
	return NewHomeScene(sched, opts)
}

// lifecycle is the part every page shares: a fresh world per start, the
// frame loop and spawn timers, and their release on stop.
type lifecycle struct {
	name    string
	sched   *scheduler.Scheduler
	opts    Options
	ecs     *ecs.ECS
	rng     components.RandomSource
	handles []*scheduler.Handle
	running bool
}

func newLifecycle(name string, sched *scheduler.Scheduler, opts Options) lifecycle {
	if opts.Input == nil {
		opts.Input = systems.UpdateInput
	}
	return lifecycle{name: name, sched: sched, opts: opts}
}

// begin prepares a new world on surface. It returns false when already
// running or when there is nothing to draw on.
func (l *lifecycle) begin(surface render.Canvas, horizon bool) bool {
	if l.running {
		return false
	}
	if render.IsZero(surface) {
		log.Printf("[%s] no drawing surface, not starting", l.name)
		return false
	}

	l.ecs = ecs.NewECS(donburi.NewWorld())
	l.rng = l.random()
	factory.CreateRandom(l.ecs, l.rng)
	factory.CreateInput(l.ecs)
	s := factory.CreateSurface(l.ecs, surface, horizon)
	if horizon {
		systems.PaintHorizon(components.Surface.Get(s).Horizon)
	}
	l.ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)
	l.running = true
	return true
}

func (l *lifecycle) random() components.RandomSource {
	if l.opts.Random != nil {
		return l.opts.Random
	}
	seed := l.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// surfaceSize returns the size read at start.
func (l *lifecycle) surfaceSize() (float64, float64) {
	entry, _ := components.Surface.First(l.ecs.World)
	s := components.Surface.Get(entry)
	return s.Width, s.Height
}

// loop acquires the per-frame update.
func (l *lifecycle) loop() {
	l.hold(l.sched.Loop(l.ecs.Update))
}

// refill acquires the interval timer of a periodic field.
func (l *lifecycle) refill(field *donburi.Entry) {
	fc := components.Field.Get(field).Config
	l.hold(l.sched.Every(fc.SpawnInterval, func() {
		systems.SpawnPeriodic(l.ecs, field)
	}))
}

func (l *lifecycle) hold(h *scheduler.Handle) {
	l.handles = append(l.handles, h)
}

// end cancels every held handle. It returns false when not running.
func (l *lifecycle) end() bool {
	if !l.running {
		return false
	}
	for _, h := range l.handles {
		h.Cancel()
	}
	l.handles = nil
	l.running = false
	log.Printf("[%s] stopped", l.name)
	return true
}

func (l *lifecycle) Running() bool { return l.running }

// World exposes the scene's world, nil before the first start.
func (l *lifecycle) World() donburi.World {
	if l.ecs == nil {
		return nil
	}
	return l.ecs.World
}

func (l *lifecycle) Draw(screen *ebiten.Image) {
	if !l.running {
		return
	}
	l.ecs.Draw(screen)
}
