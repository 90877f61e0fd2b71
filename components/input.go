package components

import (
	cfg "github.com/automoto/stardrift/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	WheelY         float64 // wheel delta this frame
	CursorX        int
	CursorY        int
	PointerClicked bool // left button went down this frame
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
