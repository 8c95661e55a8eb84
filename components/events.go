package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ControllerEvent reports a controller connecting or disconnecting
type ControllerEvent struct {
	ID        int
	Connected bool
	Keyboard  bool
}

var ControllerEvents = events.NewEventType[ControllerEvent]()

// CollisionEvent reports a pair of colliders starting or stopping to overlap
type CollisionEvent struct {
	A, B    donburi.Entity
	Started bool
}

var CollisionEvents = events.NewEventType[CollisionEvent]()
