package game

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speeder/internal/config"
	"speeder/internal/physics"
)

type fakeSound struct{ playing bool }

func (f *fakeSound) Play()           { f.playing = true }
func (f *fakeSound) Stop()           { f.playing = false }
func (f *fakeSound) IsPlaying() bool { return f.playing }

// restingApp returns an app whose vehicle already sits on the ground, so Y stays put between frames.
func restingApp(t *testing.T) *App {
	t.Helper()
	a := New(config.Default())
	a.Binding.Body.Position = rl.NewVector3(0, 1.5, 0)
	a.Binding.Body.Velocity = rl.Vector3{}
	return a
}

func TestNewUsesReferenceSetup(t *testing.T) {
	a := New(config.Default())

	require.Len(t, a.World.Bodies, 2)
	assert.True(t, a.Ground.Static())
	assert.Equal(t, rl.NewVector3(0, 10, 0), a.Binding.Body.Position)
	assert.Equal(t, float32(500), a.Binding.Body.Mass)
	assert.False(t, a.ModelBound())
	assert.False(t, a.Rig.Bound())
	assert.InDelta(t, 1.0/60.0, a.Timestep, 1e-9)
}

func TestFrameMovesForwardAtHeadingZero(t *testing.T) {
	a := restingApp(t)
	a.Vehicle.Speed = 0.25

	a.Frame()

	p := a.Binding.Body.Position
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1.5, p.Y, 1e-4)
	assert.InDelta(t, 0.25, p.Z, 1e-6)
}

func TestFrameMovesSidewaysAtQuarterTurn(t *testing.T) {
	a := restingApp(t)
	a.Vehicle.Speed = 0.25
	a.Vehicle.Heading = math.Pi / 2

	a.Frame()

	p := a.Binding.Body.Position
	assert.InDelta(t, 0.25, p.X, 1e-6)
	assert.InDelta(t, 0, p.Z, 1e-6)
}

func TestFrameLeavesVerticalToPhysics(t *testing.T) {
	a := New(config.Default())
	a.Vehicle.Speed = 1

	a.Frame()

	assert.Less(t, a.Binding.Body.Position.Y, float32(10), "gravity still pulls the body down")
	assert.InDelta(t, 1, a.Binding.Body.Position.Z, 1e-6)
}

func TestCollisionCannotPushVehicleSideways(t *testing.T) {
	a := restingApp(t)
	wall := physics.NewBody(rl.NewVector3(3, 1.5, 0), physics.NewBox(rl.NewVector3(2, 1.5, 3)), 0, nil)
	a.World.AddBody(wall)
	a.Vehicle.Speed = 0.5

	a.Frame()

	p := a.Binding.Body.Position
	assert.InDelta(t, 0, p.X, 1e-6, "overlap with the wall would push along -X")
	assert.InDelta(t, 0.5, p.Z, 1e-6)
	assert.Equal(t, float32(0), a.Binding.Body.Velocity.X)
}

func TestTurnKeyOverridesSolverOrientation(t *testing.T) {
	a := restingApp(t)
	a.Binding.Body.Orientation = rl.QuaternionFromAxisAngle(rl.NewVector3(1, 0, 0), 0.3)

	require.True(t, a.HandleKey('a'))

	want := rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), math.Pi/180)
	got := a.Binding.Body.Orientation
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
	assert.InDelta(t, want.Z, got.Z, 1e-6)
	assert.InDelta(t, want.W, got.W, 1e-6)
}

func TestUnboundKeyChangesNothing(t *testing.T) {
	a := restingApp(t)
	tipped := rl.QuaternionFromAxisAngle(rl.NewVector3(1, 0, 0), 0.3)
	a.Binding.Body.Orientation = tipped
	before := *a.Vehicle

	assert.False(t, a.HandleKey('q'))
	assert.False(t, a.HandleKey('W'))
	assert.Equal(t, before, *a.Vehicle)
	assert.Equal(t, tipped, a.Binding.Body.Orientation)
}

func TestPressingWFiveTimes(t *testing.T) {
	a := restingApp(t)
	snd := &fakeSound{}
	a.BindSound(snd)
	want := []float32{0.25, 0.5, 0.75, 1.0, 1.0}

	for i, w := range want {
		a.HandleKey('w')
		assert.Equal(t, w, a.Vehicle.Speed, "press %d", i+1)
	}
	assert.True(t, snd.playing)
}

func TestKeysBeforeSoundLoads(t *testing.T) {
	a := restingApp(t)

	assert.True(t, a.HandleKey('w'))
	assert.True(t, a.HandleKey('s'))
	assert.Equal(t, float32(0), a.Vehicle.Speed)
}

func TestDecelerateToZeroStopsSound(t *testing.T) {
	a := restingApp(t)
	snd := &fakeSound{}
	a.BindSound(snd)

	a.HandleKey('w')
	require.True(t, snd.playing)
	a.HandleKey('s')
	assert.False(t, snd.playing)
}

func TestCameraStaysPutUntilModelBinds(t *testing.T) {
	a := restingApp(t)
	a.Vehicle.Speed = 1
	start := a.Camera.Position
	startTarget := a.Camera.Target

	for i := 0; i < 10; i++ {
		a.Frame()
	}
	assert.Equal(t, start, a.Camera.Position)
	assert.Equal(t, startTarget, a.Camera.Target)
	assert.False(t, a.View().ModelBound)
}

func TestCameraSnapsBehindVehicleOnceBound(t *testing.T) {
	a := restingApp(t)
	a.BindModel()
	require.True(t, a.Rig.Bound())

	a.Frame()

	body := a.Binding.Body.Position
	assert.InDelta(t, body.X, a.Camera.Position.X, 1e-4)
	assert.InDelta(t, body.Y+4, a.Camera.Position.Y, 1e-4)
	assert.InDelta(t, body.Z-6, a.Camera.Position.Z, 1e-4)
	assert.Equal(t, body, a.Camera.Target, "camera aims at the model")
}

func TestVisualTransformCopiesBodyPose(t *testing.T) {
	a := restingApp(t)
	a.HandleKey('d')
	a.BindModel()
	a.Vehicle.Speed = 0.5

	a.Frame()

	v := a.View()
	require.True(t, v.ModelBound)
	origin := rl.Vector3Transform(rl.Vector3{}, v.ModelMatrix)
	assert.InDelta(t, v.Body.Position.X, origin.X, 1e-4)
	assert.InDelta(t, v.Body.Position.Y, origin.Y, 1e-4)
	assert.InDelta(t, v.Body.Position.Z, origin.Z, 1e-4)
}

func TestBindModelTwiceKeepsFirstTransform(t *testing.T) {
	a := restingApp(t)
	a.BindModel()
	first := a.Rig.Offset.Parent

	a.BindModel()
	assert.Same(t, first, a.Rig.Offset.Parent)
}

func TestResizeUpdatesAspect(t *testing.T) {
	a := New(config.Default())

	a.Resize(1000, 500)
	assert.InDelta(t, 2, a.Camera.Aspect, 1e-6)
}
