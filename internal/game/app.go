package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"speeder/internal/camera"
	"speeder/internal/config"
	"speeder/internal/physics"
	"speeder/internal/rig"
	"speeder/internal/vehicle"
)

// App owns all demo state. The key handler and Frame are called from the same thread, one at a time.
type App struct {
	Vehicle  *vehicle.State
	World    *physics.World
	Binding  Binding
	Ground   *physics.Body
	Rig      *rig.ChaseRig
	Camera   *camera.State
	Follower camera.Follower
	Timestep float32

	// model is the visual transform; nil until the vehicle model has loaded.
	model      *rig.Node
	modelScale float32
	sound      vehicle.Sound
}

// View is what the renderer needs for one frame.
type View struct {
	Camera      rl.Camera3D
	ModelBound  bool
	ModelMatrix rl.Matrix
	Body        Pose
	Speed       float32
	Heading     float32
}

// New builds the physics world, the vehicle body, and an unbound chase rig from cfg.
func New(cfg config.Config) *App {
	world := physics.NewWorld(vec3(cfg.Physics.Gravity))

	groundMtl := &physics.Material{Name: "ground"}
	bodyMtl := &physics.Material{Name: "speeder"}
	world.AddContactMaterial(physics.ContactMaterial{A: bodyMtl, B: groundMtl, Restitution: cfg.Physics.Restitution})

	ground := physics.NewBody(rl.Vector3{}, physics.NewPlane(), 0, groundMtl)
	world.AddBody(ground)

	body := physics.NewBody(vec3(cfg.Vehicle.Start), physics.NewBox(vec3(cfg.Vehicle.HalfExtents)), cfg.Vehicle.Mass, bodyMtl)
	world.AddBody(body)

	aspect := float32(1)
	if cfg.Window.Height > 0 {
		aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)
	}

	return &App{
		Vehicle:    vehicle.New(cfg.Vehicle.MaxSpeed, cfg.Vehicle.Acceleration),
		World:      world,
		Binding:    Binding{Body: body},
		Ground:     ground,
		Rig:        rig.NewChaseRig(vec3(cfg.Camera.Offset)),
		Camera:     camera.New(cfg.Camera.Fovy, aspect, cfg.Camera.Near, cfg.Camera.Far),
		Follower:   camera.NewFollower(cfg.Camera.MinHeight, cfg.Camera.FollowFactor),
		Timestep:   cfg.Physics.Timestep,
		modelScale: cfg.Model.Scale,
	}
}

// BindModel marks the vehicle model as loaded: it gets a visual transform at the body's pose
// and the chase rig is mounted on it. Later calls are ignored.
func (a *App) BindModel() {
	if a.model != nil {
		return
	}
	n := rig.NewNode("speeder")
	n.Local.Scale = rl.NewVector3(a.modelScale, a.modelScale, a.modelScale)
	a.model = n
	a.syncModel()
	a.Rig.Attach(n)
}

// ModelBound reports whether the vehicle model has loaded.
func (a *App) ModelBound() bool {
	return a.model != nil
}

// BindSound installs the engine sound once it has loaded.
func (a *App) BindSound(snd vehicle.Sound) {
	a.sound = snd
}

// HandleKey applies one key press. Unbound keys are ignored and reported false.
// A bound key resets the body orientation to the heading, dropping any solver rotation.
func (a *App) HandleKey(r rune) bool {
	if !a.Vehicle.Apply(vehicle.ActionForKey(r), a.sound) {
		return false
	}
	a.Binding.SetOrientation(a.Vehicle.Orientation())
	return true
}

// Frame advances one display frame: physics step, vehicle integration, camera follow.
// The timestep is constant whatever the real frame time was.
func (a *App) Frame() {
	x, z := a.Binding.Horizontal()
	a.World.Step(a.Timestep)
	a.integrate(x, z)
	a.Follower.Update(a.Camera, a.Rig)
}

// integrate moves the body on the XZ plane from where it was before the step, so the solver
// never contributes horizontal motion. Y stays with the solver.
func (a *App) integrate(x, z float32) {
	dx, dz := a.Vehicle.Displacement()
	a.Binding.Place(x+dx, z+dz)
	if a.model == nil {
		return
	}
	a.syncModel()
	a.Camera.LookAt(a.model.WorldPosition())
}

func (a *App) syncModel() {
	p := a.Binding.Pose()
	a.model.Local.Position = p.Position
	a.model.Local.Rotation = p.Orientation
}

// Resize updates the camera for a new surface size.
func (a *App) Resize(width, height int32) {
	a.Camera.Resize(width, height)
}

// View snapshots the state for rendering.
func (a *App) View() View {
	v := View{
		Camera:     a.Camera.Camera3D(),
		ModelBound: a.model != nil,
		Body:       a.Binding.Pose(),
		Speed:      a.Vehicle.Speed,
		Heading:    a.Vehicle.Heading,
	}
	if a.model != nil {
		v.ModelMatrix = a.model.WorldMatrix()
	}
	return v
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
