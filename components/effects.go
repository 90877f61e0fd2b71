package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HoverData tracks the pointer-over scale pulse of a planet
type HoverData struct {
	Hovered bool
	Scale   float64      // current display scale
	Tween   *gween.Tween // nil when settled
}

var Hover = donburi.NewComponentType[HoverData]()
