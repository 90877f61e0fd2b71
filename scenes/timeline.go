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
)

// TimelineScene is the mission timeline: a drifting ambient layer, a burst
// of streaks on every scroll and the section indicators.
type TimelineScene struct {
	lifecycle

	scrollField *donburi.Entry
	scroll      *donburi.Entry
	onScroll    func(w donburi.World, ev systems.ScrollEvent)
	listening   bool
}

func NewTimelineScene(sched *scheduler.Scheduler, opts Options) *TimelineScene {
	return &TimelineScene{lifecycle: newLifecycle("timeline", sched, opts)}
}

func (t *TimelineScene) Page() cfg.Page { return cfg.PageTimeline }

func (t *TimelineScene) Start(surface render.Canvas) {
	if !t.begin(surface, false) {
		return
	}
	w, h := t.surfaceSize()

	drift := factory.CreateField(t.ecs, &cfg.DriftStars, w, h, t.rng)
	t.scrollField = factory.CreateField(t.ecs, &cfg.ScrollStars, w, h, t.rng)
	t.scroll = factory.CreateScroll(t.ecs, h, len(cfg.Timeline.Missions))

	t.ecs.AddSystem(t.opts.Input)
	t.ecs.AddSystem(systems.UpdateScroll)
	t.ecs.AddSystem(systems.ProcessEvents)
	t.ecs.AddSystem(systems.UpdateFields)
	t.ecs.AddRenderer(cfg.LayerBackdrop, systems.DrawFrame)
	t.ecs.AddRenderer(cfg.LayerScene, systems.DrawTimelineLabels)
	t.ecs.AddRenderer(cfg.LayerHUD, systems.DrawIndicators)

	t.onScroll = t.handleScroll
	systems.ScrollEvents.Subscribe(t.ecs.World, t.onScroll)
	t.listening = true

	t.loop()
	t.refill(drift)
	log.Printf("[timeline] started %.0fx%.0f, %d sections", w, h, len(cfg.Timeline.Missions))
}

// handleScroll appends a burst and moves the highlighted indicator.
func (t *TimelineScene) handleScroll(w donburi.World, ev systems.ScrollEvent) {
	systems.SpawnBurst(t.ecs, t.scrollField)
	s := components.Scroll.Get(t.scroll)
	s.Active = systems.NearestSection(ev.Offset, s.ViewportHeight, s.Sections)
}

func (t *TimelineScene) Stop() {
	if !t.end() {
		return
	}
	if t.listening {
		systems.ScrollEvents.Unsubscribe(t.ecs.World, t.onScroll)
		t.listening = false
	}
}

// Listening reports whether the scroll listener is attached.
func (t *TimelineScene) Listening() bool { return t.listening }

// ScrollField returns the burst field, nil before the first start.
func (t *TimelineScene) ScrollField() *donburi.Entry { return t.scrollField }
