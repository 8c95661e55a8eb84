package components

import (
	"github.com/automoto/starcatch/arena"
	"github.com/yohamta/donburi"
)

// ArenaData stores the loaded arena (singleton component)
type ArenaData struct {
	Arena *arena.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
