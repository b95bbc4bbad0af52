package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"speeder/internal/physics"
)

// Pose is a position and orientation in world space.
type Pose struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
}

// Binding ties the vehicle to its rigid body. The body is the source of truth for the pose;
// the visual transform only ever copies from it.
type Binding struct {
	Body *physics.Body
}

// Pose returns the body's current pose.
func (b Binding) Pose() Pose {
	return Pose{Position: b.Body.Position, Orientation: b.Body.Orientation}
}

// SetOrientation overwrites whatever orientation the body has.
func (b Binding) SetOrientation(q rl.Quaternion) {
	b.Body.Orientation = q
}

// Horizontal returns the body's X and Z.
func (b Binding) Horizontal() (x, z float32) {
	return b.Body.Position.X, b.Body.Position.Z
}

// Place sets the body's X and Z and cancels horizontal velocity, leaving the vertical axis to the solver.
func (b Binding) Place(x, z float32) {
	b.Body.Position.X = x
	b.Body.Position.Z = z
	b.Body.Velocity.X = 0
	b.Body.Velocity.Z = 0
}
