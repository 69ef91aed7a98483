// Package bounds is a 2D shape picking backend. Each registered entity has a
// hit shape in surface coordinates and an explicit depth; on every frame,
// [Backend.Pick] tests each pointer against every shape and submits a hit
// for each containing shape.
//
// The backend reports the full candidate list, never just the nearest hit:
// pass-through resolution is the focus resolver's job, and hiding candidates
// here would break entities behind a FocusPass surface.
package bounds

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/phanxgames/picket"
)

// Shape is a hit-testable region in surface coordinates.
type Shape interface {
	Contains(x, y float64) bool
}

// Rect is an axis-aligned rectangular hit area.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Circle is a circular hit area.
type Circle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) is within Radius of the center. Points on
// the rim count as inside.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Polygon is a convex polygon hit area. Points must define a convex polygon
// in either winding order.
type Polygon struct {
	Points []picket.Vec2
}

// Contains reports whether (x, y) lies inside the polygon. The point must
// sit on the same side of every edge, so the edge cross products may not mix
// signs.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]

		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

type boundsTarget struct {
	entity picket.Entity
	shape  Shape
	depth  float32
}

// Backend tests pointers against registered shapes and submits hits.
// Registration order is the submission order, which the focus resolver uses
// as the stable tie-break for equal depths.
type Backend struct {
	picker      *picket.Picker
	targets     []boundsTarget
	cameraOrder int
	surface     int
}

// New creates a backend submitting to the picker.
func New(p *picket.Picker) *Backend {
	return &Backend{picker: p}
}

// SetCameraOrder sets the camera priority attached to every hit this
// backend submits.
func (b *Backend) SetCameraOrder(order int) {
	b.cameraOrder = order
}

// SetSurface restricts the backend to pointers whose location targets the
// given surface identifier (see Location.Target). The default is surface 0.
func (b *Backend) SetSurface(surface int) {
	b.surface = surface
}

// Add registers a shape for the entity. An entity may be registered once per
// backend; adding it again replaces its shape and depth.
func (b *Backend) Add(e picket.Entity, shape Shape, depth float32) {
	for i := range b.targets {
		if b.targets[i].entity == e {
			b.targets[i].shape = shape
			b.targets[i].depth = depth
			return
		}
	}
	b.targets = append(b.targets, boundsTarget{entity: e, shape: shape, depth: depth})
}

// Remove unregisters the entity.
func (b *Backend) Remove(e picket.Entity) {
	for i := range b.targets {
		if b.targets[i].entity == e {
			copy(b.targets[i:], b.targets[i+1:])
			b.targets[len(b.targets)-1] = boundsTarget{}
			b.targets = b.targets[:len(b.targets)-1]
			return
		}
	}
}

// Pick tests every pointer on this backend's surface against every
// registered shape and submits the hits. Call once per frame, before
// [picket.Picker.Update]. Entities whose pickable flag is disabled (or that
// have despawned) are skipped.
//
// Each hit carries the pointer's surface point as its hit position, with the
// shape's depth on the Z axis. Shapes are flat, so no normal is reported.
func (b *Backend) Pick() {
	world := b.picker.World()
	for _, id := range b.picker.Pointers() {
		loc, ok := b.picker.Location(id)
		if !ok || loc.Target != b.surface {
			continue
		}
		for _, t := range b.targets {
			if !world.Pickable(t.entity) {
				continue
			}
			if t.shape.Contains(loc.Position.X, loc.Position.Y) {
				pos := mgl32.Vec3{
					float32(loc.Position.X),
					float32(loc.Position.Y),
					t.depth,
				}
				b.picker.Submit(id, picket.Hit{
					Entity:      t.entity,
					Depth:       t.depth,
					Position:    &pos,
					CameraOrder: b.cameraOrder,
				})
			}
		}
	}
}
