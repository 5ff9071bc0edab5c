// Package config loads the avatar camera settings file. TOML and YAML are supported
// and selected by file extension; a missing file yields the defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/Carmen-Shannon/oxy-avatar/engine/window"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for settings files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalidConfig is returned when a decoded value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the settings file layout.
type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`
	Engine EngineConfig `toml:"engine" yaml:"engine"`
	Camera CameraConfig `toml:"camera" yaml:"camera"`
	Modes  []ModeConfig `toml:"modes" yaml:"modes"`
}

// WindowConfig sizes the demo window. ScrollScale is the wheel amount of one scroll notch.
type WindowConfig struct {
	Title       string  `toml:"title" yaml:"title"`
	Width       int     `toml:"width" yaml:"width"`
	Height      int     `toml:"height" yaml:"height"`
	MinWidth    int     `toml:"min_width" yaml:"min_width"`
	MinHeight   int     `toml:"min_height" yaml:"min_height"`
	MaxWidth    int     `toml:"max_width" yaml:"max_width"`
	MaxHeight   int     `toml:"max_height" yaml:"max_height"`
	ScrollScale float64 `toml:"scroll_scale" yaml:"scroll_scale"`
}

// EngineConfig tunes the frame loop.
type EngineConfig struct {
	FrameLimit float64 `toml:"frame_limit" yaml:"frame_limit"`
	Profiling  bool    `toml:"profiling" yaml:"profiling"`
	VSync      bool    `toml:"vsync" yaml:"vsync"`
}

// CameraConfig holds orbit limits and gesture scaling. Angles are in radians.
type CameraConfig struct {
	MinDistance      float64 `toml:"min_distance" yaml:"min_distance"`
	MaxDistance      float64 `toml:"max_distance" yaml:"max_distance"`
	MinPolar         float64 `toml:"min_polar" yaml:"min_polar"`
	MaxPolar         float64 `toml:"max_polar" yaml:"max_polar"`
	PolarEpsilon     float64 `toml:"polar_epsilon" yaml:"polar_epsilon"`
	MouseSensitivity float64 `toml:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	TouchSensitivity float64 `toml:"touch_sensitivity" yaml:"touch_sensitivity"`
	ZoomSpeed        float64 `toml:"zoom_speed" yaml:"zoom_speed"`
	AutoRotate       bool    `toml:"auto_rotate" yaml:"auto_rotate"`
	AutoRotateSpeed  float64 `toml:"auto_rotate_speed" yaml:"auto_rotate_speed"`
	InitialMode      string  `toml:"initial_mode" yaml:"initial_mode"`
}

// ModeConfig is an extra camera shot registered after the built-in ones.
// An ID matching a built-in shot replaces it.
type ModeConfig struct {
	ID       string     `toml:"id" yaml:"id"`
	Name     string     `toml:"name" yaml:"name"`
	Position [3]float64 `toml:"position" yaml:"position"`
	Target   [3]float64 `toml:"target" yaml:"target"`
	FOV      float64    `toml:"fov" yaml:"fov"`
	Duration float64    `toml:"duration" yaml:"duration"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	bounds := camera.DefaultOrbitBounds()
	return &Config{
		Window: WindowConfig{
			Title:       "Avatar Camera",
			Width:       1280,
			Height:      720,
			MinWidth:    320,
			MinHeight:   240,
			MaxWidth:    3840,
			MaxHeight:   2160,
			ScrollScale: 100,
		},
		Engine: EngineConfig{
			VSync: true,
		},
		Camera: CameraConfig{
			MinDistance:      bounds.MinDistance,
			MaxDistance:      bounds.MaxDistance,
			MinPolar:         bounds.MinPolar,
			MaxPolar:         bounds.MaxPolar,
			PolarEpsilon:     bounds.Epsilon,
			MouseSensitivity: 0.01,
			TouchSensitivity: 0.01,
			ZoomSpeed:        0.01,
			AutoRotateSpeed:  0.5,
			InitialMode:      camera.ModeDefault,
		},
	}
}

// Load reads the settings file at path on top of the defaults. A missing file is not
// an error: the defaults are returned and the fact is logged.
//
// Parameters:
//   - path: a .toml, .yaml or .yml file
//
// Returns:
//   - *Config: the merged settings
//   - error: ErrUnsupportedFormat, a wrapped decode error, or ErrInvalidConfig
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Config] %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch format {
	case formatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML config %s: %w", path, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[Config] loaded %s (%d extra modes)", path, len(cfg.Modes))
	return cfg, nil
}

// Save writes the settings to path in the format implied by its extension.
//
// Parameters:
//   - path: a .toml, .yaml or .yml file
//
// Returns:
//   - error: ErrUnsupportedFormat or a wrapped encode/write error
func (c *Config) Save(path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case formatTOML:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("encode TOML config: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode YAML config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode YAML config: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks every range the camera relies on.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending field, or nil
func (c *Config) Validate() error {
	win, cam := c.Window, c.Camera
	switch {
	case win.MinWidth <= 0 || win.MinHeight <= 0 || win.MaxWidth < win.MinWidth || win.MaxHeight < win.MinHeight:
		return fmt.Errorf("%w: window limits %dx%d to %dx%d", ErrInvalidConfig, win.MinWidth, win.MinHeight, win.MaxWidth, win.MaxHeight)
	case win.Width < win.MinWidth || win.Width > win.MaxWidth || win.Height < win.MinHeight || win.Height > win.MaxHeight:
		return fmt.Errorf("%w: window size %dx%d outside limits", ErrInvalidConfig, win.Width, win.Height)
	case !(win.ScrollScale > 0):
		return fmt.Errorf("%w: window.scroll_scale %v", ErrInvalidConfig, win.ScrollScale)
	case c.Engine.FrameLimit < 0:
		return fmt.Errorf("%w: engine.frame_limit %v", ErrInvalidConfig, c.Engine.FrameLimit)
	case !(cam.MinDistance > 0) || !(cam.MaxDistance >= cam.MinDistance) || math.IsInf(cam.MaxDistance, 0):
		return fmt.Errorf("%w: camera distance range [%v, %v]", ErrInvalidConfig, cam.MinDistance, cam.MaxDistance)
	case cam.MinPolar < 0 || cam.MaxPolar > math.Pi || !(cam.MaxPolar > cam.MinPolar):
		return fmt.Errorf("%w: camera polar range [%v, %v]", ErrInvalidConfig, cam.MinPolar, cam.MaxPolar)
	case cam.PolarEpsilon < 0 || 2*cam.PolarEpsilon >= cam.MaxPolar-cam.MinPolar:
		return fmt.Errorf("%w: camera.polar_epsilon %v", ErrInvalidConfig, cam.PolarEpsilon)
	case cam.MouseSensitivity < 0 || cam.TouchSensitivity < 0 || cam.ZoomSpeed < 0:
		return fmt.Errorf("%w: negative gesture scaling", ErrInvalidConfig)
	}
	return nil
}

// WindowOptions converts the window section into window options.
//
// Returns:
//   - []window.WindowBuilderOption: options for window.NewWindow
func (c *Config) WindowOptions() []window.WindowBuilderOption {
	win := c.Window
	return []window.WindowBuilderOption{
		window.WithTitle(win.Title),
		window.WithSizeLimits(win.MinWidth, win.MinHeight, win.MaxWidth, win.MaxHeight),
		window.WithSize(win.Width, win.Height),
		window.WithScrollScale(win.ScrollScale),
	}
}

// ControllerOptions converts the camera section into controller options.
//
// Parameters:
//   - registry: the mode registry the controller should use, or nil for the built-in shots
//
// Returns:
//   - []camera.CameraControllerOption: options for camera.NewCameraController
func (c *Config) ControllerOptions(registry *camera.ModeRegistry) []camera.CameraControllerOption {
	cam := c.Camera
	options := []camera.CameraControllerOption{
		camera.WithRadiusBounds(cam.MinDistance, cam.MaxDistance),
		camera.WithPolarBounds(cam.MinPolar, cam.MaxPolar),
		camera.WithPolarEpsilon(cam.PolarEpsilon),
		camera.WithMouseSensitivity(cam.MouseSensitivity),
		camera.WithTouchSensitivity(cam.TouchSensitivity),
		camera.WithZoomSpeed(cam.ZoomSpeed),
		camera.WithAutoRotate(cam.AutoRotate, cam.AutoRotateSpeed),
	}
	if cam.InitialMode != "" {
		options = append(options, camera.WithInitialMode(cam.InitialMode))
	}
	if registry != nil {
		options = append(options, camera.WithRegistry(registry))
	}
	return options
}

// Registry builds a registry with the built-in shots followed by the configured ones.
//
// Returns:
//   - *camera.ModeRegistry: the populated registry
//   - error: camera.ErrInvalidMode or ErrInvalidConfig wrapped with the offending mode id
func (c *Config) Registry() (*camera.ModeRegistry, error) {
	registry := camera.NewDefaultModeRegistry()
	for _, m := range c.Modes {
		if !(m.FOV > 0 && m.FOV < 180) {
			return nil, fmt.Errorf("mode %q: %w: fov %v", m.ID, ErrInvalidConfig, m.FOV)
		}
		mode := camera.Mode{
			ID:                 m.ID,
			DisplayName:        m.Name,
			Pose:               camera.NewPose(m.Position[0], m.Position[1], m.Position[2], m.Target[0], m.Target[1], m.Target[2], m.FOV),
			TransitionDuration: m.Duration,
		}
		if err := registry.Register(mode); err != nil {
			return nil, fmt.Errorf("mode %q: %w", m.ID, err)
		}
	}
	return registry, nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}
