package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPageHome
	ActionPagePlanets
	ActionPageTimeline
	ActionScrollUp
	ActionScrollDown
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPageHome: {
				Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyHome},
			},
			ActionPagePlanets: {
				Keys: []ebiten.Key{ebiten.Key2},
			},
			ActionPageTimeline: {
				Keys: []ebiten.Key{ebiten.Key3},
			},
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyPageUp},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyPageDown},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
		},
	}
}
