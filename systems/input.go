package systems

import (
	"github.com/automoto/stardrift/components"
	cfg "github.com/automoto/stardrift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input component.
// Must run BEFORE UpdateScroll and UpdatePicking in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	_, input.WheelY = ebiten.Wheel()
	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.PointerClicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

var pageActions = map[cfg.ActionID]cfg.Page{
	cfg.ActionPageHome:     cfg.PageHome,
	cfg.ActionPagePlanets:  cfg.PagePlanets,
	cfg.ActionPageTimeline: cfg.PageTimeline,
}

// PageRequested reports a page switch requested from the keyboard this frame.
func PageRequested() (cfg.Page, bool) {
	for action, page := range pageActions {
		for _, key := range cfg.Input.Bindings[action].Keys {
			if inpututil.IsKeyJustPressed(key) {
				return page, true
			}
		}
	}
	return cfg.PageHome, false
}
