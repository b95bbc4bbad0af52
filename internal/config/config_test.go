package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(envLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_MatchesReferenceTuning(t *testing.T) {
	cfg := Default()

	assert.Equal(t, float32(1), cfg.Vehicle.MaxSpeed)
	assert.Equal(t, float32(0.25), cfg.Vehicle.Acceleration)
	assert.Equal(t, float32(500), cfg.Vehicle.Mass)
	assert.Equal(t, [3]float32{2, 1.5, 3}, cfg.Vehicle.HalfExtents)
	assert.Equal(t, [3]float32{0, 10, 0}, cfg.Vehicle.Start)
	assert.InDelta(t, 1.0/60.0, cfg.Physics.Timestep, 1e-9)
	assert.Equal(t, float32(1), cfg.Camera.MinHeight)
	assert.Equal(t, float32(1), cfg.Camera.FollowFactor)
	assert.Equal(t, float32(0.02), cfg.Model.Scale)
	assert.False(t, cfg.Debug.ShowFPS)
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	t.Setenv(envLogLevel, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "speeder.yaml")
	data := `
vehicle:
  max_speed: 2
camera:
  fovy: 60
debug:
  show_fps: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(2), cfg.Vehicle.MaxSpeed)
	assert.Equal(t, float32(0.25), cfg.Vehicle.Acceleration, "unset fields keep their defaults")
	assert.Equal(t, float32(60), cfg.Camera.Fovy)
	assert.Equal(t, float32(1000), cfg.Camera.Far)
	assert.True(t, cfg.Debug.ShowFPS)
	assert.Equal(t, "assets/models/speeder.gltf", cfg.Model.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicle: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_LogLevelFromEnvironment(t *testing.T) {
	t.Setenv(envLogLevel, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestPath(t *testing.T) {
	t.Setenv(envConfigPath, "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv(envConfigPath, "/tmp/other.yaml")
	assert.Equal(t, "/tmp/other.yaml", Path())
}

func TestLoadEnv_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadEnv_SetsVariables(t *testing.T) {
	t.Setenv(envLogLevel, "")
	require.NoError(t, os.Unsetenv(envLogLevel))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SPEEDER_LOG_LEVEL=warn\n"), 0644))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "warn", os.Getenv(envLogLevel))
}
