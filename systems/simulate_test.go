package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
)

func TestTriggerAtProbabilityOneActivatesEveryIdleParticle(t *testing.T) {
	e := newTestECS(constant(0.5))
	fc := cfg.ShootingStars
	fc.TriggerProbability = 1
	fc.InitialCount = 3
	field := newTestField(e, fc)

	for _, p := range particlesOf(e, field) {
		if p.Mode != cfg.ModeShootingIdle {
			t.Fatalf("new shooting particle mode = %v, want idle", p.Mode)
		}
	}

	StepField(e, field)

	for i, entry := range FieldParticles(e.World, field) {
		p := components.Particle.Get(entry)
		if p.Mode != cfg.ModeShootingActive {
			t.Errorf("particle %d mode = %v, want active", i, p.Mode)
		}
		if p.Alpha != 1 {
			t.Errorf("particle %d alpha = %v, want 1", i, p.Alpha)
		}
		if p.Position.X != 400 || p.Position.Y != 150 {
			t.Errorf("particle %d origin = %v, want (400,150)", i, p.Position)
		}
		if n := components.Trail.Get(entry).Len(); n != 0 {
			t.Errorf("particle %d trail len = %d, want 0", i, n)
		}
	}
}

func TestTriggerAtProbabilityZeroNeverFires(t *testing.T) {
	e := newTestECS(constant(0))
	fc := cfg.ShootingStars
	fc.TriggerProbability = 0
	field := newTestField(e, fc)

	for i := 0; i < 100; i++ {
		StepField(e, field)
	}
	for _, entry := range FieldParticles(e.World, field) {
		p := components.Particle.Get(entry)
		if p.Mode != cfg.ModeShootingIdle {
			t.Fatalf("mode = %v, want idle", p.Mode)
		}
		if p.Velocity.X != 0 || p.Velocity.Y != 0 {
			t.Errorf("idle velocity = %v, want zero", p.Velocity)
		}
		if components.Trail.Get(entry).Len() != 0 {
			t.Error("idle particle has a trail")
		}
	}
}

func TestShootingStepMovesDecaysAndExtendsTrail(t *testing.T) {
	e := newTestECS(constant(0.75))
	fc := cfg.ShootingStars
	fc.TriggerProbability = 1
	fc.InitialCount = 1
	field := newTestField(e, fc)

	StepField(e, field) // activate
	StepField(e, field) // move

	entry := FieldParticles(e.World, field)[0]
	p := components.Particle.Get(entry)
	if p.Position.X != 600.5 || p.Position.Y != 225.5 {
		t.Errorf("position = %v, want (600.5,225.5)", p.Position)
	}
	if math.Abs(p.Alpha-(1-fc.DecayRate)) > 1e-12 {
		t.Errorf("alpha = %v, want %v", p.Alpha, 1-fc.DecayRate)
	}
	trail := components.Trail.Get(entry)
	if trail.Len() != 1 {
		t.Fatalf("trail len = %d, want 1", trail.Len())
	}
	if got := trail.At(0); got != p.Position {
		t.Errorf("trail point = %v, want %v", got, p.Position)
	}
}

func TestShootingResetsCleanly(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *components.ParticleData)
	}{
		{"exhausted", func(p *components.ParticleData) { p.Alpha = 0.0005 }},
		{"left bounds", func(p *components.ParticleData) { p.Position.X = 900 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(constant(0.75))
			fc := cfg.ShootingStars
			fc.TriggerProbability = 1
			fc.InitialCount = 1
			fc.Margin = 10
			field := newTestField(e, fc)

			StepField(e, field)
			StepField(e, field)
			entry := FieldParticles(e.World, field)[0]
			tt.mutate(components.Particle.Get(entry))

			StepField(e, field)

			if n := FieldCount(e.World, field); n != 1 {
				t.Fatalf("count = %d, want 1", n)
			}
			p := components.Particle.Get(entry)
			if p.Mode != cfg.ModeShootingIdle {
				t.Errorf("mode = %v, want idle", p.Mode)
			}
			if p.Position.X != fc.ParkX || p.Position.Y != fc.ParkY {
				t.Errorf("position = %v, want parked", p.Position)
			}
			if p.Velocity.X != 0 || p.Velocity.Y != 0 {
				t.Errorf("velocity = %v, want zero", p.Velocity)
			}
			if components.Trail.Get(entry).Len() != 0 {
				t.Error("trail not cleared")
			}
		})
	}
}

func TestBurstParticleRemovedOnExit(t *testing.T) {
	e := newTestECS(constant(0.5))
	field := newTestField(e, cfg.ScrollStars)
	SpawnBurst(e, field)

	first := FieldParticles(e.World, field)[0]
	components.Particle.Get(first).Position.X = 799

	StepField(e, field)

	if n := FieldCount(e.World, field); n != 4 {
		t.Fatalf("count = %d, want 4", n)
	}
	if first.Valid() {
		t.Error("exited particle still alive")
	}
	for _, p := range particlesOf(e, field) {
		if p.Position.X != 405.5 || p.Position.Y != 294.5 {
			t.Errorf("position = %v, want (405.5,294.5)", p.Position)
		}
	}
}

func TestClosedPopulationKeepsCount(t *testing.T) {
	e := newTestECS(&scripted{values: []float64{0.0, 0.2, 0.9, 0.1, 0.4}})
	fc := cfg.Twinkle
	field := newTestField(e, fc)

	for step := 0; step < 300; step++ {
		StepField(e, field)
		if n := FieldCount(e.World, field); n != fc.InitialCount {
			t.Fatalf("step %d: count = %d, want %d", step, n, fc.InitialCount)
		}
	}
	if seq := components.Field.Get(field).NextSeq; seq <= uint64(fc.InitialCount) {
		t.Errorf("no replacement happened (next seq %d)", seq)
	}
}

func TestAmbientAlphaStaysWithinFloorAndCeil(t *testing.T) {
	e := newTestECS(rand.New(rand.NewPCG(1, 2)))
	fc := cfg.DimTwinkle
	field := newTestField(e, fc)

	for step := 0; step < 1000; step++ {
		StepField(e, field)
		for _, p := range particlesOf(e, field) {
			if p.Alpha < fc.AlphaFloor || p.Alpha > fc.AlphaCeil {
				t.Fatalf("step %d: alpha %v outside [%v,%v]", step, p.Alpha, fc.AlphaFloor, fc.AlphaCeil)
			}
		}
	}
	if n := FieldCount(e.World, field); n != fc.InitialCount {
		t.Errorf("count = %d, want %d", n, fc.InitialCount)
	}
}

func TestDriftMovesRightAndLeavesAtEdge(t *testing.T) {
	e := newTestECS(constant(0.5))
	field := newTestField(e, cfg.DriftStars)
	if !SpawnPeriodic(e, field) {
		t.Fatal("SpawnPeriodic refused below target")
	}

	entry := FieldParticles(e.World, field)[0]
	StepField(e, field)
	p := components.Particle.Get(entry)
	want := 400 + 0.45*cfg.DriftStars.DriftFactor
	if math.Abs(p.Position.X-want) > 1e-12 || p.Position.Y != 300 {
		t.Errorf("position = %v, want (%v,300)", p.Position, want)
	}

	p.Position.X = 800
	StepField(e, field)
	if n := FieldCount(e.World, field); n != 0 {
		t.Errorf("count = %d, want 0 after leaving", n)
	}
}

func TestUpdateFieldsStepsEveryField(t *testing.T) {
	e := newTestECS(constant(0.5))
	a := cfg.ShootingStars
	a.TriggerProbability = 1
	a.InitialCount = 2
	b := cfg.StreakStars
	b.TriggerProbability = 1
	b.InitialCount = 2
	fa := newTestField(e, a)
	fb := newTestField(e, b)

	UpdateFields(e)

	for _, field := range []*donburi.Entry{fa, fb} {
		for _, p := range particlesOf(e, field) {
			if p.Mode != cfg.ModeShootingActive {
				t.Errorf("%s: mode = %v, want active", components.Field.Get(field).Config.Name, p.Mode)
			}
		}
	}
}

func TestReplacementStartsAboveReplaceThreshold(t *testing.T) {
	e := newTestECS(constant(0))
	fc := cfg.Twinkle
	fc.InitialCount = 1
	field := newTestField(e, fc)

	// Constant 0 starts the star dark and blinks it down every step.
	StepField(e, field)
	fd := components.Field.Get(field)
	if fd.NextSeq != 2 {
		t.Fatalf("next seq = %d, want one replacement", fd.NextSeq)
	}
	p := particlesOf(e, field)[0]
	want := fc.ReplaceBelow + 2*fc.BlinkSpeed
	if math.Abs(p.Alpha-want) > 1e-12 {
		t.Fatalf("replacement alpha = %v, want %v", p.Alpha, want)
	}

	StepField(e, field)
	if fd.NextSeq != 2 {
		t.Errorf("replacement was replaced again on the next step (next seq %d)", fd.NextSeq)
	}
	if got := particlesOf(e, field)[0].Alpha; got <= fc.ReplaceBelow {
		t.Errorf("alpha after one step = %v, want above %v", got, fc.ReplaceBelow)
	}
}

func TestTwinkleStaysVisibleOverLongRun(t *testing.T) {
	e := newTestECS(rand.New(rand.NewPCG(7, 11)))
	fc := cfg.Twinkle
	field := newTestField(e, fc)

	for step := 1; step <= 50000; step++ {
		StepField(e, field)
		if step%10000 != 0 {
			continue
		}
		visible := 0
		for _, p := range particlesOf(e, field) {
			if p.Alpha > 0.1 {
				visible++
			}
		}
		if visible < fc.InitialCount*3/4 {
			t.Fatalf("step %d: %d/%d stars visible", step, visible, fc.InitialCount)
		}
	}
	if created := components.Field.Get(field).NextSeq - uint64(fc.InitialCount); created > 1000 {
		t.Errorf("%d replacements in 50000 steps, want a handful", created)
	}
}
