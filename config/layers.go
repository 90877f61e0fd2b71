package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order.
const (
	LayerBackdrop ecs.LayerID = iota
	LayerScene
	LayerHUD
)
