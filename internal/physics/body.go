package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind selects the collision shape of a body.
type ShapeKind int

const (
	// Box is an axis-aligned box of HalfExtents around the body position. Orientation does not rotate it.
	Box ShapeKind = iota
	// Plane is an infinite horizontal ground whose surface is at the body's Y; everything below is solid.
	Plane
)

// Shape is the collision shape of a body. HalfExtents is only used by Box.
type Shape struct {
	Kind        ShapeKind
	HalfExtents rl.Vector3
}

// NewBox returns a box shape with the given half extents.
func NewBox(halfExtents rl.Vector3) Shape {
	return Shape{Kind: Box, HalfExtents: halfExtents}
}

// NewPlane returns a ground plane shape.
func NewPlane() Shape {
	return Shape{Kind: Plane}
}

// Material tags a body for contact material lookup. Compared by pointer.
type Material struct {
	Name string
}

// Body is a rigid body with position, orientation, and velocity.
// Mass 0 makes the body static: it ignores gravity and is never moved by contacts.
type Body struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
	Velocity    rl.Vector3
	Mass        float32
	Shape       Shape
	Material    *Material
}

// NewBody returns a body at position with identity orientation and zero velocity.
func NewBody(position rl.Vector3, shape Shape, mass float32, mtl *Material) *Body {
	if mass < 0 {
		mass = 0
	}
	return &Body{
		Position:    position,
		Orientation: rl.QuaternionIdentity(),
		Mass:        mass,
		Shape:       shape,
		Material:    mtl,
	}
}

// Static reports whether the body never moves.
func (b *Body) Static() bool {
	return b.Mass == 0
}

// bounds returns the AABB of a box body.
func (b *Body) bounds() rl.BoundingBox {
	h := b.Shape.HalfExtents
	return rl.NewBoundingBox(
		rl.NewVector3(b.Position.X-h.X, b.Position.Y-h.Y, b.Position.Z-h.Z),
		rl.NewVector3(b.Position.X+h.X, b.Position.Y+h.Y, b.Position.Z+h.Z),
	)
}
