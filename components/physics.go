package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is an entity's pose in world space (origin at the screen
// center, +Y up, pixels).
type TransformData struct {
	Position math.Vec2
	Rotation float64 // radians, counter-clockwise
	Z        float64 // draw order
}

var Transform = donburi.NewComponentType[TransformData]()

// BodyKind selects how the physics step treats a body
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
)

// BodyData holds the simulated state of a rigid body
type BodyData struct {
	Kind            BodyKind
	Velocity        math.Vec2 // px/s
	AngularVelocity float64   // rad/s
	Force           math.Vec2 // external force, px/s^2 per unit mass
	Mass            float64
	LinearDamping   float64
	AngularDamping  float64
	GravityScale    float64
	Restitution     float64
}

// InverseMass returns 0 for static or massless bodies.
func (b *BodyData) InverseMass() float64 {
	if b.Kind == BodyStatic || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

var Body = donburi.NewComponentType[BodyData]()

// ShapeKind is the narrow-phase shape of a collider
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// ColliderData describes a collision shape centered on the entity transform
type ColliderData struct {
	Shape      ShapeKind
	Radius     float64 // ShapeCircle
	HalfWidth  float64 // ShapeRect
	HalfHeight float64 // ShapeRect
	// Sensors report overlaps but never push bodies apart
	Sensor bool
	// Only pairs where at least one side has ActiveEvents publish CollisionEvents
	ActiveEvents bool
}

// Extents returns the half size of the collider's bounding box.
func (c *ColliderData) Extents() (float64, float64) {
	if c.Shape == ShapeCircle {
		return c.Radius, c.Radius
	}
	return c.HalfWidth, c.HalfHeight
}

var Collider = donburi.NewComponentType[ColliderData]()
