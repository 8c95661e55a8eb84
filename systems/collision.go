package systems

import (
	"math"
	"sort"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// contactKey identifies an unordered pair of entities, smaller id first
type contactKey struct {
	a, b donburi.Entity
}

func newContactKey(a, b donburi.Entity) contactKey {
	if b < a {
		a, b = b, a
	}
	return contactKey{a: a, b: b}
}

// manifold describes an overlap. The normal points from the first shape to
// the second.
type manifold struct {
	normalX, normalY float64
	depth            float64
}

// detectContacts finds every overlapping pair involving a dynamic body,
// pushes solid pairs apart and returns the pairs that report events.
func detectContacts(s *Session) map[contactKey]struct{} {
	w := s.World
	current := make(map[contactKey]struct{})
	seen := make(map[contactKey]bool)

	colliders.Each(w, func(e *donburi.Entry) {
		if components.Body.Get(e).Kind != components.BodyDynamic {
			return
		}
		self := components.Object.Get(e)
		var check *resolv.Collision
		if self.HasTags(tags.ResolvSensor) {
			// Sensors only ever touch solids and players
			check = self.Check(0, 0, tags.ResolvSolid, tags.ResolvPlayer)
		} else {
			check = self.Check(0, 0)
		}
		if check == nil {
			return
		}

		for _, obj := range check.Objects {
			other, ok := obj.Data.(donburi.Entity)
			if !ok || !w.Valid(other) || other == e.Entity() {
				continue
			}
			key := newContactKey(e.Entity(), other)
			if seen[key] {
				continue
			}
			seen[key] = true

			oe := w.Entry(other)
			ca, cb := components.Collider.Get(e), components.Collider.Get(oe)

			m, hit := collide(components.Transform.Get(e), ca, components.Transform.Get(oe), cb)
			if !hit {
				continue
			}
			if !ca.Sensor && !cb.Sensor {
				resolveContact(e, oe, m)
			}
			if ca.ActiveEvents || cb.ActiveEvents {
				current[key] = struct{}{}
			}
		}
	})

	return current
}

// publishContactChanges emits started and stopped events in a stable order
// and remembers the current pairs for the next step. Pairs whose entities
// were removed end silently.
func publishContactChanges(s *Session, current map[contactKey]struct{}) {
	var started, stopped []contactKey
	for key := range current {
		if _, ok := s.contacts[key]; !ok {
			started = append(started, key)
		}
	}
	for key := range s.contacts {
		if _, ok := current[key]; ok {
			continue
		}
		if s.World.Valid(key.a) && s.World.Valid(key.b) {
			stopped = append(stopped, key)
		}
	}
	sortContacts(started)
	sortContacts(stopped)

	for _, key := range started {
		components.CollisionEvents.Publish(s.World, components.CollisionEvent{A: key.a, B: key.b, Started: true})
	}
	for _, key := range stopped {
		components.CollisionEvents.Publish(s.World, components.CollisionEvent{A: key.a, B: key.b, Started: false})
	}

	s.contacts = current
}

func sortContacts(keys []contactKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
}

// collide runs the narrow phase for two shapes.
func collide(ta *components.TransformData, ca *components.ColliderData, tb *components.TransformData, cb *components.ColliderData) (manifold, bool) {
	switch {
	case ca.Shape == components.ShapeCircle && cb.Shape == components.ShapeCircle:
		return circleCircle(ta.Position.X, ta.Position.Y, ca.Radius, tb.Position.X, tb.Position.Y, cb.Radius)
	case ca.Shape == components.ShapeCircle && cb.Shape == components.ShapeRect:
		return circleRect(ta.Position.X, ta.Position.Y, ca.Radius, tb.Position.X, tb.Position.Y, cb.HalfWidth, cb.HalfHeight)
	case ca.Shape == components.ShapeRect && cb.Shape == components.ShapeCircle:
		m, hit := circleRect(tb.Position.X, tb.Position.Y, cb.Radius, ta.Position.X, ta.Position.Y, ca.HalfWidth, ca.HalfHeight)
		m.normalX, m.normalY = -m.normalX, -m.normalY
		return m, hit
	default:
		return rectRect(ta.Position.X, ta.Position.Y, ca.HalfWidth, ca.HalfHeight, tb.Position.X, tb.Position.Y, cb.HalfWidth, cb.HalfHeight)
	}
}

func circleCircle(ax, ay, ar, bx, by, br float64) (manifold, bool) {
	dx, dy := bx-ax, by-ay
	total := ar + br
	distSq := dx*dx + dy*dy
	if distSq >= total*total {
		return manifold{}, false
	}

	dist := math.Sqrt(distSq)
	if dist == 0 {
		return manifold{normalX: 0, normalY: 1, depth: total}, true
	}
	return manifold{normalX: dx / dist, normalY: dy / dist, depth: total - dist}, true
}

// circleRect's normal points from the circle toward the rectangle.
func circleRect(cx, cy, r, rx, ry, hw, hh float64) (manifold, bool) {
	closestX := math.Max(rx-hw, math.Min(cx, rx+hw))
	closestY := math.Max(ry-hh, math.Min(cy, ry+hh))

	dx, dy := closestX-cx, closestY-cy
	distSq := dx*dx + dy*dy
	if distSq >= r*r {
		return manifold{}, false
	}

	if distSq > 0 {
		dist := math.Sqrt(distSq)
		return manifold{normalX: dx / dist, normalY: dy / dist, depth: r - dist}, true
	}

	// Center inside the rectangle: push out along the shallowest axis.
	xDist := math.Min(cx-(rx-hw), (rx+hw)-cx)
	yDist := math.Min(cy-(ry-hh), (ry+hh)-cy)
	if xDist < yDist {
		nx := 1.0
		if cx > rx {
			nx = -1
		}
		return manifold{normalX: nx, depth: xDist + r}, true
	}
	ny := 1.0
	if cy > ry {
		ny = -1
	}
	return manifold{normalY: ny, depth: yDist + r}, true
}

func rectRect(ax, ay, ahw, ahh, bx, by, bhw, bhh float64) (manifold, bool) {
	overlapX := math.Min(ax+ahw, bx+bhw) - math.Max(ax-ahw, bx-bhw)
	overlapY := math.Min(ay+ahh, by+bhh) - math.Max(ay-ahh, by-bhh)
	if overlapX <= 0 || overlapY <= 0 {
		return manifold{}, false
	}

	if overlapX < overlapY {
		nx := 1.0
		if bx < ax {
			nx = -1
		}
		return manifold{normalX: nx, depth: overlapX}, true
	}
	ny := 1.0
	if by < ay {
		ny = -1
	}
	return manifold{normalY: ny, depth: overlapY}, true
}

// resolveContact applies an impulse along the normal and a positional
// correction. Restitution is the average of both bodies, and slow impacts do
// not bounce.
func resolveContact(a, b *donburi.Entry, m manifold) {
	ba, bb := components.Body.Get(a), components.Body.Get(b)
	invA, invB := ba.InverseMass(), bb.InverseMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	rvx := bb.Velocity.X - ba.Velocity.X
	rvy := bb.Velocity.Y - ba.Velocity.Y
	velAlongNormal := rvx*m.normalX + rvy*m.normalY

	if velAlongNormal < 0 {
		e := (ba.Restitution + bb.Restitution) / 2
		if -velAlongNormal < cfg.Physics.RestingSpeed {
			e = 0
		}
		j := -(1 + e) * velAlongNormal / invSum

		ba.Velocity.X -= j * m.normalX * invA
		ba.Velocity.Y -= j * m.normalY * invA
		bb.Velocity.X += j * m.normalX * invB
		bb.Velocity.Y += j * m.normalY * invB
	}

	if m.depth <= cfg.Physics.CorrectionSlop {
		return
	}
	correction := (m.depth - cfg.Physics.CorrectionSlop) / invSum * cfg.Physics.CorrectionPercent
	ta, tb := components.Transform.Get(a), components.Transform.Get(b)
	ta.Position.X -= m.normalX * correction * invA
	ta.Position.Y -= m.normalY * correction * invA
	tb.Position.X += m.normalX * correction * invB
	tb.Position.Y += m.normalY * correction * invB
}
