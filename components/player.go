package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData identifies the controller that owns a player entity
type PlayerData struct {
	ID   int // controller id, also the scoreboard key
	Name string
}

var Player = donburi.NewComponentType[PlayerData]()
