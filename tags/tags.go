package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Star       = donburi.NewTag().SetName("Star")
	Trail      = donburi.NewTag().SetName("Trail")
	Poof       = donburi.NewTag().SetName("Poof")
	Boundary   = donburi.NewTag().SetName("Boundary")
	Background = donburi.NewTag().SetName("Background")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvSensor = "sensor"
)
