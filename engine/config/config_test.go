package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
[window]
title = "Studio"
width = 800
height = 600
min_width = 640

[engine]
frame_limit = 120.0
profiling = true

[camera]
min_distance = 1.5
max_distance = 8.0
zoom_speed = 0.02
auto_rotate = true
auto_rotate_speed = 0.25
initial_mode = "overhead"

[[modes]]
id = "overhead"
name = "Overhead"
position = [0.0, 6.0, 1.0]
target = [0.0, 1.0, 0.0]
fov = 70.0
duration = 1.5

[[modes]]
id = "closeup"
position = [0.0, 1.3, 1.8]
target = [0.0, 1.3, 0.0]
fov = 40.0
duration = 0.6
`

const yamlConfig = `
window:
  title: Studio
  width: 1024
  height: 768
camera:
  mouse_sensitivity: 0.005
  initial_mode: side
modes:
  - id: shoulder
    name: Over the Shoulder
    position: [1.0, 1.6, -1.5]
    target: [0.0, 1.4, 2.0]
    fov: 50
    duration: 0.9
`

type nopTarget struct {
	position [3]float64
	fov      float64
}

func (n *nopTarget) SetPosition(x, y, z float64) { n.position = [3]float64{x, y, z} }
func (n *nopTarget) SetLookAt(x, y, z float64)   {}
func (n *nopTarget) SetFieldOfView(deg float64)  { n.fov = deg }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "camera.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, "Studio", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 640, cfg.Window.MinWidth)
	assert.Equal(t, 2160, cfg.Window.MaxHeight, "unset limits keep their defaults")
	assert.Equal(t, 120.0, cfg.Engine.FrameLimit)
	assert.True(t, cfg.Engine.Profiling)
	assert.True(t, cfg.Engine.VSync, "unset keys keep their defaults")

	assert.Equal(t, 1.5, cfg.Camera.MinDistance)
	assert.Equal(t, 8.0, cfg.Camera.MaxDistance)
	assert.Equal(t, 0.01, cfg.Camera.MouseSensitivity)
	assert.Equal(t, 0.02, cfg.Camera.ZoomSpeed)
	require.Len(t, cfg.Modes, 2)
	assert.Equal(t, [3]float64{0, 6, 1}, cfg.Modes[0].Position)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "camera.yml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 0.005, cfg.Camera.MouseSensitivity)
	assert.Equal(t, camera.ModeSide, cfg.Camera.InitialMode)
	assert.Equal(t, 10.0, cfg.Camera.MaxDistance)
	require.Len(t, cfg.Modes, 1)
	assert.Equal(t, "Over the Shoulder", cfg.Modes[0].Name)
	assert.Equal(t, [3]float64{0, 1.4, 2}, cfg.Modes[0].Target)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "camera.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "broken.toml", "[camera\nmin_distance = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.toml")

	_, err = Load(writeFile(t, "range.yaml", "camera:\n  min_distance: 5\n  max_distance: 2\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "polar.toml", "[camera]\nmax_polar = 4.0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "small.toml", "[window]\nwidth = 100\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "limits.yaml", "window:\n  min_width: 900\n  max_width: 800\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "scroll.toml", "[window]\nscroll_scale = 0.0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRegistryAddsAndOverridesModes(t *testing.T) {
	cfg, err := Load(writeFile(t, "camera.toml", tomlConfig))
	require.NoError(t, err)

	registry, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{
		camera.ModeDefault, camera.ModeCloseup, camera.ModeFull, camera.ModeSide, camera.ModeLow, "overhead",
	}, registry.IDs())

	closeup, err := registry.Get(camera.ModeCloseup)
	require.NoError(t, err)
	assert.Equal(t, 40.0, closeup.Pose.FieldOfView)
	assert.Equal(t, camera.ModeCloseup, closeup.DisplayName)

	cfg.Modes = append(cfg.Modes, ModeConfig{ID: "broken", FOV: 50})
	_, err = cfg.Registry()
	assert.ErrorIs(t, err, camera.ErrInvalidMode)

	cfg.Modes = []ModeConfig{{ID: "flat", FOV: 0, Duration: 1}}
	_, err = cfg.Registry()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWindowOptions(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.WindowOptions(), 4)
}

func TestControllerOptionsDriveController(t *testing.T) {
	cfg, err := Load(writeFile(t, "camera.toml", tomlConfig))
	require.NoError(t, err)
	registry, err := cfg.Registry()
	require.NoError(t, err)

	target := &nopTarget{}
	cc := camera.NewCameraController(target, nil, cfg.ControllerOptions(registry)...)

	info := cc.CurrentInfo()
	assert.Equal(t, "overhead", info.Mode)
	assert.True(t, info.AutoRotate)
	assert.Equal(t, 0.25, info.AutoRotateSpeed)
	assert.Equal(t, 70.0, target.fov)

	cc.HandleWheel(camera.WheelEvent{Amount: 10000})
	_, _, r := cc.Spherical()
	assert.Equal(t, 8.0, r)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Window.Title = "Saved"
			cfg.Modes = []ModeConfig{{ID: "saved", Position: [3]float64{1, 2, 3}, FOV: 30, Duration: 2}}

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}

	assert.ErrorIs(t, Default().Save(filepath.Join(t.TempDir(), "out.ini")), ErrUnsupportedFormat)
}
