package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// restingSpeed: contacts slower than this along the contact axis stop dead instead of bouncing,
// so a body resting on the ground does not jitter from one frame of gravity.
const restingSpeed = 0.5

// ContactMaterial sets the restitution used when bodies with materials A and B touch (either order).
type ContactMaterial struct {
	A, B        *Material
	Restitution float32
}

// World holds a set of bodies and runs a simple 3D physics step: gravity, integration, contact push-out.
type World struct {
	Gravity          rl.Vector3
	Bodies           []*Body
	ContactMaterials []ContactMaterial
}

// NewWorld returns an empty world with the given gravity (e.g. (0, -9.81, 0) for Y-up).
func NewWorld(gravity rl.Vector3) *World {
	return &World{Gravity: gravity}
}

// AddBody appends a body to the world. Order is preserved.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// AddContactMaterial registers the restitution for a pair of materials.
func (w *World) AddContactMaterial(cm ContactMaterial) {
	w.ContactMaterials = append(w.ContactMaterials, cm)
}

// restitution returns the contact restitution for the two materials, or 0 when no pair is registered.
func (w *World) restitution(a, b *Material) float32 {
	for _, cm := range w.ContactMaterials {
		if (cm.A == a && cm.B == b) || (cm.A == b && cm.B == a) {
			return cm.Restitution
		}
	}
	return 0
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then resolve contacts.
// Orientation is never touched; the solver has no angular dynamics.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static() {
			continue
		}
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(w.Gravity, dt))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	}

	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			w.collide(w.Bodies[i], w.Bodies[j])
		}
	}
}

func (w *World) collide(a, b *Body) {
	if a.Static() && b.Static() {
		return
	}
	switch {
	case a.Shape.Kind == Plane && b.Shape.Kind == Box:
		w.resolvePlane(a, b)
	case a.Shape.Kind == Box && b.Shape.Kind == Plane:
		w.resolvePlane(b, a)
	case a.Shape.Kind == Box && b.Shape.Kind == Box:
		w.resolveBoxes(a, b)
	}
}

// resolvePlane lifts box out of the ground plane and bounces its vertical velocity.
func (w *World) resolvePlane(plane, box *Body) {
	if box.Static() {
		return
	}
	depth := plane.Position.Y - (box.Position.Y - box.Shape.HalfExtents.Y)
	if depth <= 0 {
		return
	}
	box.Position.Y += depth
	if box.Velocity.Y < 0 {
		box.Velocity.Y = bounce(box.Velocity.Y, w.restitution(plane.Material, box.Material))
	}
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}

// resolveBoxes pushes two overlapping boxes apart along the minimum penetration axis, split by mass.
func (w *World) resolveBoxes(a, b *Body) {
	boxA, boxB := a.bounds(), b.bounds()
	if !rl.CheckCollisionBoxes(boxA, boxB) {
		return
	}
	depth, axis := penetrationAxis(boxA, boxB)
	if axis < 0 {
		return
	}
	// a moves toward negative axis when it sits on the low side of b.
	sign := float32(1)
	if component(a.Position, axis) < component(b.Position, axis) {
		sign = -1
	}
	var moveA, moveB float32
	switch {
	case a.Static():
		moveB = -sign * depth
	case b.Static():
		moveA = sign * depth
	default:
		total := a.Mass + b.Mass
		moveA = sign * depth * (b.Mass / total)
		moveB = -sign * depth * (a.Mass / total)
	}
	addComponent(&a.Position, axis, moveA)
	addComponent(&b.Position, axis, moveB)

	e := w.restitution(a.Material, b.Material)
	if !a.Static() {
		setComponent(&a.Velocity, axis, bounce(component(a.Velocity, axis), e))
	}
	if !b.Static() {
		setComponent(&b.Velocity, axis, bounce(component(b.Velocity, axis), e))
	}
}

// bounce reflects v scaled by restitution e; slow contacts come to rest.
func bounce(v, e float32) float32 {
	if v < restingSpeed && v > -restingSpeed {
		return 0
	}
	return -v * e
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *rl.Vector3, axis int, x float32) {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
}

func addComponent(v *rl.Vector3, axis int, d float32) {
	setComponent(v, axis, component(*v, axis)+d)
}
