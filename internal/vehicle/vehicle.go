package vehicle

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/constraints"
)

// TurnStep is the heading change per turn key press (one degree).
const TurnStep = math32.Pi / 180

// Up is the axis the heading rotates about.
var Up = rl.NewVector3(0, 1, 0)

// Sound is the looping engine sound. Implementations must tolerate Stop when not playing.
type Sound interface {
	Play()
	Stop()
	IsPlaying() bool
}

// Action is a discrete driving input.
type Action int

const (
	None Action = iota
	Accelerate
	Decelerate
	TurnLeft
	TurnRight
)

func (a Action) String() string {
	switch a {
	case Accelerate:
		return "accelerate"
	case Decelerate:
		return "decelerate"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	default:
		return "none"
	}
}

// ActionForKey maps a typed character to an action. Matching is case-sensitive: 'W' is not 'w'.
func ActionForKey(r rune) Action {
	switch r {
	case 'w':
		return Accelerate
	case 's':
		return Decelerate
	case 'a':
		return TurnLeft
	case 'd':
		return TurnRight
	default:
		return None
	}
}

// State is the speeder's scalar motion state. Speed stays within [0, MaxSpeed].
// Heading is in radians about +Y and is never wrapped.
type State struct {
	Speed        float32
	MaxSpeed     float32
	Acceleration float32
	Heading      float32
}

// New returns a state at rest facing +Z.
func New(maxSpeed, acceleration float32) *State {
	return &State{MaxSpeed: maxSpeed, Acceleration: acceleration}
}

// Accelerate adds one acceleration step, capped at MaxSpeed, and starts snd if it is not already playing.
func (s *State) Accelerate(snd Sound) {
	s.Speed = clamp(s.Speed+s.Acceleration, 0, s.MaxSpeed)
	if snd != nil && !snd.IsPlaying() {
		snd.Play()
	}
}

// Decelerate removes one acceleration step, floored at 0. Reaching exactly 0 stops snd.
func (s *State) Decelerate(snd Sound) {
	s.Speed = clamp(s.Speed-s.Acceleration, 0, s.MaxSpeed)
	if s.Speed == 0 && snd != nil && snd.IsPlaying() {
		snd.Stop()
	}
}

func (s *State) TurnLeft() {
	s.Heading += TurnStep
}

func (s *State) TurnRight() {
	s.Heading -= TurnStep
}

// Apply runs a. It reports false for None, which leaves the state untouched.
func (s *State) Apply(a Action, snd Sound) bool {
	switch a {
	case Accelerate:
		s.Accelerate(snd)
	case Decelerate:
		s.Decelerate(snd)
	case TurnLeft:
		s.TurnLeft()
	case TurnRight:
		s.TurnRight()
	default:
		return false
	}
	return true
}

// Orientation is the rotation of Heading radians about the vertical axis.
func (s *State) Orientation() rl.Quaternion {
	return rl.QuaternionFromAxisAngle(Up, s.Heading)
}

// Displacement is the planar movement for one frame: (speed·sin(heading), speed·cos(heading)).
func (s *State) Displacement() (dx, dz float32) {
	return s.Speed * math32.Sin(s.Heading), s.Speed * math32.Cos(s.Heading)
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
