package systems

import (
	"testing"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 800
	testHeight = 600
)

// scripted replays values in order, wrapping around.
type scripted struct {
	values []float64
	i      int
}

func (s *scripted) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func constant(v float64) *scripted {
	return &scripted{values: []float64{v}}
}

func newTestECS(rng components.RandomSource) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRandom(e, rng)
	return e
}

// newTestField builds a field from a copy of fc so tests can tune it freely.
func newTestField(e *ecs.ECS, fc cfg.FieldConfig) *donburi.Entry {
	return factory.CreateField(e, &fc, testWidth, testHeight, randomSource(e.World))
}

func particlesOf(e *ecs.ECS, field *donburi.Entry) []*components.ParticleData {
	var out []*components.ParticleData
	for _, entry := range FieldParticles(e.World, field) {
		out = append(out, components.Particle.Get(entry))
	}
	return out
}

func newTestSurface(e *ecs.ECS, horizon bool) *render.Recorder {
	rec := render.NewRecorder(testWidth, testHeight)
	factory.CreateSurface(e, rec, horizon)
	return rec
}

func mustFirst[T any](t *testing.T, c *donburi.ComponentType[T], w donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(w)
	if !ok {
		t.Fatal("component not present in world")
	}
	return entry
}
