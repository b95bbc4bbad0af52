package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jinzhu/copier"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the optional config file, relative to the process working directory.
// The demo ships without one; Default() is the reference tuning.
const DefaultPath = "config/speeder.yaml"

// DefaultEnvFile is loaded (if present) before the config file so SPEEDER_* variables can be set there.
const DefaultEnvFile = ".env"

const (
	envConfigPath = "SPEEDER_CONFIG"
	envLogLevel   = "SPEEDER_LOG_LEVEL"
)

// Vehicle holds the speeder's tuning and its rigid body shape.
type Vehicle struct {
	MaxSpeed     float32    `yaml:"max_speed"`
	Acceleration float32    `yaml:"acceleration"`
	Mass         float32    `yaml:"mass"`
	HalfExtents  [3]float32 `yaml:"half_extents"`
	Start        [3]float32 `yaml:"start"`
}

// Physics holds world settings. Timestep is the constant step used once per frame.
type Physics struct {
	Gravity     [3]float32 `yaml:"gravity"`
	Timestep    float32    `yaml:"timestep"`
	Restitution float32    `yaml:"restitution"`
}

// Camera holds projection settings and the chase rig offset (in model space, before model scale).
type Camera struct {
	Fovy         float32    `yaml:"fovy"`
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	Offset       [3]float32 `yaml:"offset"`
	MinHeight    float32    `yaml:"min_height"`
	FollowFactor float32    `yaml:"follow_factor"`
}

type Model struct {
	Path  string  `yaml:"path"`
	Scale float32 `yaml:"scale"`
}

// Ground describes the textured ground plane. Repeat is the texture tiling on both axes.
type Ground struct {
	Size              float32 `yaml:"size"`
	Segments          int32   `yaml:"segments"`
	Repeat            float32 `yaml:"repeat"`
	DisplacementScale float32 `yaml:"displacement_scale"`
	Diffuse           string  `yaml:"diffuse"`
	Displacement      string  `yaml:"displacement"`
	Normal            string  `yaml:"normal"`
	ARM               string  `yaml:"arm"`
}

type Sound struct {
	Path   string  `yaml:"path"`
	Volume float32 `yaml:"volume"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Debug toggles the diagnostic overlay. Both are off by default.
type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowSpeed bool `yaml:"show_speed"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the full set of demo settings.
type Config struct {
	Vehicle Vehicle `yaml:"vehicle"`
	Physics Physics `yaml:"physics"`
	Camera  Camera  `yaml:"camera"`
	Model   Model   `yaml:"model"`
	Ground  Ground  `yaml:"ground"`
	Sound   Sound   `yaml:"sound"`
	Window  Window  `yaml:"window"`
	Debug   Debug   `yaml:"debug"`
	Log     Log     `yaml:"log"`
}

// Default returns the demo's reference settings.
func Default() Config {
	return Config{
		Vehicle: Vehicle{
			MaxSpeed:     1,
			Acceleration: 0.25,
			Mass:         500,
			HalfExtents:  [3]float32{2, 1.5, 3},
			Start:        [3]float32{0, 10, 0},
		},
		Physics: Physics{
			Gravity:     [3]float32{0, -9.81, 0},
			Timestep:    1.0 / 60.0,
			Restitution: 0.1,
		},
		Camera: Camera{
			Fovy:         75,
			Near:         0.1,
			Far:          1000,
			Offset:       [3]float32{0, 200, -300},
			MinHeight:    1,
			FollowFactor: 1,
		},
		Model: Model{
			Path:  "assets/models/speeder.gltf",
			Scale: 0.02,
		},
		Ground: Ground{
			Size:              1000,
			Segments:          64,
			Repeat:            64,
			DisplacementScale: 1,
			Diffuse:           "assets/textures/concrete/diff.jpg",
			Displacement:      "assets/textures/concrete/disp.png",
			Normal:            "assets/textures/concrete/norm.png",
			ARM:               "assets/textures/concrete/arm.jpg",
		},
		Sound: Sound{
			Path:   "assets/sounds/aud.mp3",
			Volume: 0.5,
		},
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "speeder",
			TargetFPS: 60,
		},
		Log: Log{
			Level: "info",
			File:  "logs/speeder.log",
		},
	}
}

// LoadEnv reads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Path returns the config file to use: $SPEEDER_CONFIG when set, DefaultPath otherwise.
func Path() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path and overlays every non-zero value onto Default().
// A missing file yields Default(). SPEEDER_LOG_LEVEL, when set, wins over the file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("config: %w", err)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		if err := overlay(&cfg, &file); err != nil {
			return cfg, err
		}
	}
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// overlay copies section by section so a partially filled section keeps its other defaults.
func overlay(dst, src *Config) error {
	opt := copier.Option{IgnoreEmpty: true, DeepCopy: true}
	pairs := []struct{ to, from any }{
		{&dst.Vehicle, &src.Vehicle},
		{&dst.Physics, &src.Physics},
		{&dst.Camera, &src.Camera},
		{&dst.Model, &src.Model},
		{&dst.Ground, &src.Ground},
		{&dst.Sound, &src.Sound},
		{&dst.Window, &src.Window},
		{&dst.Debug, &src.Debug},
		{&dst.Log, &src.Log},
	}
	for _, p := range pairs {
		if err := copier.CopyWithOption(p.to, p.from, opt); err != nil {
			return fmt.Errorf("config: overlay: %w", err)
		}
	}
	return nil
}
