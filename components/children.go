package components

import "github.com/yohamta/donburi"

// ChildrenData lists the entities destroyed together with their owner
type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()
