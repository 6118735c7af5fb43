package config

import "github.com/yohamta/donburi/ecs"

// Draw layers for panel widget worlds, drawn in ascending order.
const (
	LayerBackground ecs.LayerID = iota
	LayerWidgets
	LayerText
	LayerOverlay
)
