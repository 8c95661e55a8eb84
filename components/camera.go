package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point drawn at the screen center
type CameraData struct {
	Position math.Vec2
	Zoom     float64
}

var Camera = donburi.NewComponentType[CameraData]()
