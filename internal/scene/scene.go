package scene

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"speeder/internal/assets"
	"speeder/internal/config"
	"speeder/internal/game"
)

// Renderer draws the ground and the speeder model from a game.View.
type Renderer struct {
	ground *ground
	model  *assets.Finisher[string, rl.Model]
	loaded rl.Model
	hasMdl bool
}

// New starts loading the ground textures and the vehicle model. Nothing touches the GPU until the first Draw.
func New(log zerolog.Logger, cfg config.Config) *Renderer {
	src := assets.Load(cfg.Model.Path, func() (string, error) { return checkFile(cfg.Model.Path) })
	return &Renderer{
		ground: newGround(log, cfg.Ground),
		model:  assets.Then(src, log, loadModel),
	}
}

func checkFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("scene: %w", err)
	}
	return path, nil
}

func loadModel(path string) (rl.Model, error) {
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return m, fmt.Errorf("scene: %s: model has no meshes", path)
	}
	return m, nil
}

// Poll finishes pending loads. It returns true on the frame the vehicle model becomes available.
// Window thread only.
func (r *Renderer) Poll() (modelReady bool) {
	r.ground.ensureLoaded()
	r.ground.poll()
	if r.hasMdl {
		return false
	}
	m, ok := r.model.Poll()
	if !ok {
		return false
	}
	r.loaded = m
	r.hasMdl = true
	return true
}

// Draw renders the frame in 3D. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(v game.View) {
	rl.BeginMode3D(v.Camera)
	r.ground.draw()
	if r.hasMdl && v.ModelBound {
		r.loaded.Transform = v.ModelMatrix
		rl.DrawModel(r.loaded, rl.Vector3{}, 1, rl.White)
	}
	rl.EndMode3D()
}

// Unload frees GPU resources.
func (r *Renderer) Unload() {
	r.ground.unload()
	if r.hasMdl {
		rl.UnloadModel(r.loaded)
	}
}
