package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"speeder/internal/rig"
)

// State is the main perspective camera. Position is written only by the Follower; the frame
// driver aims it with LookAt. Aspect tracks the render surface.
type State struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
	Fovy     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// New returns a camera at the origin looking down -Z with the given projection.
func New(fovy, aspect, near, far float32) *State {
	return &State{
		Position: rl.NewVector3(0, 0, 0),
		Target:   rl.NewVector3(0, 0, -1),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     fovy,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// LookAt aims the camera at p.
func (s *State) LookAt(p rl.Vector3) {
	s.Target = p
}

// Resize recomputes the aspect ratio for a width×height surface. A zero-height surface (minimized window) is ignored.
func (s *State) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Aspect = float32(width) / float32(height)
}

// Camera3D converts the state for raylib's BeginMode3D. raylib derives the aspect from the
// current render size, which Resize keeps in step with.
func (s *State) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   s.Position,
		Target:     s.Target,
		Up:         s.Up,
		Fovy:       s.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Follower moves the camera onto the chase rig's pivot. The pivot's height is floored at MinHeight,
// then the camera is interpolated toward it by Factor (1 snaps).
type Follower struct {
	MinHeight float32
	Factor    float32
}

// NewFollower returns a follower with the given floor and interpolation factor.
func NewFollower(minHeight, factor float32) Follower {
	return Follower{MinHeight: minHeight, Factor: factor}
}

// Target returns the clamped follow point for a pivot world position.
func (f Follower) Target(pivot rl.Vector3) rl.Vector3 {
	pivot.Y = max(pivot.Y, f.MinHeight)
	return pivot
}

// Update moves cam toward the rig's pivot. It is a no-op returning false while the rig is unbound.
func (f Follower) Update(cam *State, r *rig.ChaseRig) bool {
	pivot, ok := r.PivotWorldPosition()
	if !ok {
		return false
	}
	cam.Position = rl.Vector3Lerp(cam.Position, f.Target(pivot), f.Factor)
	return true
}
