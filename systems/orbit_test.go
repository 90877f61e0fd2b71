package systems

import (
	"math"
	"testing"

	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/automoto/stardrift/render"
	"github.com/automoto/stardrift/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// orbitWorld builds the planets view: camera, pick space and every body.
func orbitWorld(t *testing.T) (*ecs.ECS, []*donburi.Entry) {
	t.Helper()
	e := newTestECS(constant(0.5))
	factory.CreateInput(e)
	factory.CreateFocus(e, 1280, 720)
	space := components.Space.Get(factory.CreatePickSpace(e, 1280, 720))

	var planets []*donburi.Entry
	for i := range cfg.Planets {
		planets = append(planets, factory.CreatePlanet(e, space, &cfg.Planets[i]))
	}
	return e, planets
}

func TestUpdateOrbitsAdvancesAngle(t *testing.T) {
	e, planets := orbitWorld(t)
	sun, earth := planets[0], planets[1]

	UpdateOrbits(e)

	dt := 1.0 / float64(cfg.C.TPS)
	p := components.Planet.Get(earth)
	wantAngle := cfg.Planets[1].Speed * dt
	if math.Abs(p.Angle-wantAngle) > 1e-12 {
		t.Errorf("earth angle = %v, want %v", p.Angle, wantAngle)
	}
	if math.Abs(p.Position.X-6*math.Cos(wantAngle)) > 1e-9 || math.Abs(p.Position.Z-6*math.Sin(wantAngle)) > 1e-9 {
		t.Errorf("earth position = %v", p.Position)
	}
	if pos := components.Planet.Get(sun).Position; pos.X != 0 || pos.Z != 0 {
		t.Errorf("sun moved to %v", pos)
	}
}

func TestUpdateOrbitsPlacesPickBox(t *testing.T) {
	e, planets := orbitWorld(t)
	UpdateOrbits(e)

	cam := components.Camera.Get(mustFirst(t, components.Camera, e.World))
	sun := planets[0]
	sx, sy := cam.Project(components.Planet.Get(sun).Position)
	r := cfg.Planets[0].Size * cfg.OrbitView.Scale

	obj := components.Object.Get(sun)
	if obj.X != sx-r || obj.Y != sy-r || obj.W != 2*r || obj.H != 2*r {
		t.Errorf("sun box = (%v,%v %vx%v), want (%v,%v %vx%v)", obj.X, obj.Y, obj.W, obj.H, sx-r, sy-r, 2*r, 2*r)
	}
}

func TestPickingSelectsPlanetUnderCursor(t *testing.T) {
	e, planets := orbitWorld(t)
	UpdateOrbits(e)

	mars := planets[2]
	cam := components.Camera.Get(mustFirst(t, components.Camera, e.World))
	mx, my := cam.Project(components.Planet.Get(mars).Position)

	in := components.Input.Get(mustFirst(t, components.Input, e.World))
	in.CursorX, in.CursorY = int(mx), int(my)
	in.PointerClicked = true

	var selected []PlanetSelected
	PlanetSelectedEvents.Subscribe(e.World, func(w donburi.World, ev PlanetSelected) {
		selected = append(selected, ev)
	})

	UpdatePicking(e)
	ProcessEvents(e)

	if len(selected) != 1 {
		t.Fatalf("selections = %d, want 1", len(selected))
	}
	if selected[0].Info.Name != "Mars" {
		t.Errorf("selected %s, want Mars", selected[0].Info.Name)
	}
	if selected[0].Target != components.Planet.Get(mars).Position {
		t.Errorf("target = %v, want the current orbit position", selected[0].Target)
	}
	if !components.Hover.Get(mars).Hovered {
		t.Error("mars not hovered")
	}
	if components.Hover.Get(planets[1]).Hovered {
		t.Error("earth hovered")
	}
	if pointer := components.Pointer.Get(mustFirst(t, components.Pointer, e.World)); pointer.Hovered != mars {
		t.Error("pointer does not track the hovered planet")
	}
}

func TestPickingEmptySpaceSelectsNothing(t *testing.T) {
	e, planets := orbitWorld(t)
	UpdateOrbits(e)

	in := components.Input.Get(mustFirst(t, components.Input, e.World))
	in.CursorX, in.CursorY = 5, 5
	in.PointerClicked = true

	fired := false
	PlanetSelectedEvents.Subscribe(e.World, func(w donburi.World, ev PlanetSelected) {
		fired = true
	})
	UpdatePicking(e)
	ProcessEvents(e)

	if fired {
		t.Error("selection published over empty space")
	}
	for _, p := range planets {
		if components.Hover.Get(p).Hovered {
			t.Errorf("%s hovered", components.Planet.Get(p).Config.Info.Name)
		}
	}
}

func TestHoverTweenScalesUpAndBack(t *testing.T) {
	e, planets := orbitWorld(t)
	earth := planets[1]
	frames := int(float64(cfg.OrbitView.HoverDuration)*float64(cfg.C.TPS)) + 2

	SetHovered(earth, true)
	for i := 0; i < frames; i++ {
		UpdateHover(e)
	}
	h := components.Hover.Get(earth)
	if math.Abs(h.Scale-cfg.OrbitView.HoverScale) > 1e-5 {
		t.Errorf("hovered scale = %v, want %v", h.Scale, cfg.OrbitView.HoverScale)
	}
	if h.Tween != nil {
		t.Error("tween still running after its duration")
	}

	SetHovered(earth, true) // no change, no new tween
	if h.Tween != nil {
		t.Error("repeated hover restarted the tween")
	}

	SetHovered(earth, false)
	for i := 0; i < frames; i++ {
		UpdateHover(e)
	}
	if math.Abs(h.Scale-1) > 1e-5 {
		t.Errorf("scale after leaving = %v, want 1", h.Scale)
	}
}

func TestPaintOrbitView(t *testing.T) {
	e, planets := orbitWorld(t)
	UpdateOrbits(e)

	rec := render.NewRecorder(1280, 720)
	PaintOrbitView(e.World, rec)

	lines, circles := 0, 0
	for _, op := range rec.Ops {
		switch op.Kind {
		case render.OpLine:
			lines++
		case render.OpCircle:
			circles++
		}
	}
	if want := len(cfg.OrbitView.Rings) * ringSegments; lines != want {
		t.Errorf("ring segments = %d, want %d", lines, want)
	}
	if circles != len(planets) {
		t.Errorf("planet circles = %d, want %d", circles, len(planets))
	}
}

func TestCameraFollowsPublishedTarget(t *testing.T) {
	e, _ := orbitWorld(t)
	entry := mustFirst(t, components.Camera, e.World)
	cam := components.Camera.Get(entry)
	f := components.Focus.Get(entry)

	sx, sy := cam.Project(f.LookAt)
	if sx != cam.CenterX || sy != cam.CenterY {
		t.Errorf("initial look-at projects to (%v,%v), want the center", sx, sy)
	}

	SelectFocus(f, cfg.Planets[3].Vec(), nil)
	for StepFocus(f, cfg.Focus.Increment) {
		Publish(f, cam)
	}
	Publish(f, cam)
	if cam.Target != f.LookAt {
		t.Errorf("camera target = %v, want %v", cam.Target, f.LookAt)
	}
}
