package scenes

import (
	"log"

	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/scheduler"
	"github.com/automoto/stardrift/systems"
	"github.com/automoto/stardrift/systems/factory"
)

// HomeScene is the landing starfield: rare long-trailed shooting stars over
// a twinkling sky and the horizon curve.
type HomeScene struct {
	lifecycle
}

func NewHomeScene(sched *scheduler.Scheduler, opts Options) *HomeScene {
	return &HomeScene{lifecycle: newLifecycle("home", sched, opts)}
}

func (h *HomeScene) Page() cfg.Page { return cfg.PageHome }

func (h *HomeScene) Start(surface render.Canvas) {
	if !h.begin(surface, true) {
		return
	}
	w, ht := h.surfaceSize()
	factory.CreateField(h.ecs, &cfg.ShootingStars, w, ht, h.rng)
	twinkle := factory.CreateField(h.ecs, &cfg.Twinkle, w, ht, h.rng)

	h.ecs.AddSystem(h.opts.Input)
	h.ecs.AddSystem(systems.UpdateFields)
	h.ecs.AddRenderer(cfg.LayerBackdrop, systems.DrawFrame)

	h.loop()
	h.refill(twinkle)
	log.Printf("[home] started %.0fx%.0f", w, ht)
}

func (h *HomeScene) Stop() {
	h.end()
}
