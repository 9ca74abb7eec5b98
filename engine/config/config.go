package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML sequence of exactly three numbers, e.g. [0, 1, 0].
type Vec3 [3]float32

// Config is the viewer configuration loaded from a YAML file.
// Fields missing from the file keep the values from Default().
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Profiling ProfilingConfig `yaml:"profiling"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

type CameraConfig struct {
	Mode              string  `yaml:"mode"`
	Speed             float32 `yaml:"speed"`
	AnimationDuration float64 `yaml:"animation_duration"`
	TrackballSize     float32 `yaml:"trackball_size"`
	Fov               float32 `yaml:"fov"`
	Eye               Vec3    `yaml:"eye"`
	Center            Vec3    `yaml:"center"`
	Up                Vec3    `yaml:"up"`
	Near              float32 `yaml:"near"`
	Far               float32 `yaml:"far"`
}

// SceneConfig describes the scene: model instances and procedural spheres. Their union box is
// what the fit command and the F key frame; Min/Max is used when the scene is empty.
type SceneConfig struct {
	Min      Vec3           `yaml:"min"`
	Max      Vec3           `yaml:"max"`
	TightFit bool           `yaml:"tight_fit"`
	Models   []ModelConfig  `yaml:"models"`
	Spheres  []SphereConfig `yaml:"spheres"`
}

// ModelConfig places one glTF/GLB file in the scene. Rotation is in degrees; a zero Scale means 1.
type ModelConfig struct {
	Path     string  `yaml:"path"`
	Position Vec3    `yaml:"position"`
	Rotation Vec3    `yaml:"rotation"`
	Scale    float32 `yaml:"scale"`
}

type SphereConfig struct {
	Center Vec3    `yaml:"center"`
	Radius float32 `yaml:"radius"`
}

type RendererConfig struct {
	PresentMode string     `yaml:"present_mode"`
	ClearColor  [4]float64 `yaml:"clear_color"`
	Software    bool       `yaml:"software"`
}

type ProfilingConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is given: the viewer starts in walk mode
// looking from (0, 0, 1) at the origin.
//
// Returns:
//   - *Config: a new default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "oxy-rt",
			Width:     1280,
			Height:    720,
			MinWidth:  600,
			MinHeight: 200,
			MaxWidth:  3840,
			MaxHeight: 2160,
		},
		Camera: CameraConfig{
			Mode:              "walk",
			Speed:             3,
			AnimationDuration: 0.5,
			TrackballSize:     0.8,
			Fov:               60,
			Eye:               Vec3{0, 0, 1},
			Center:            Vec3{0, 0, 0},
			Up:                Vec3{0, 1, 0},
			Near:              0.1,
			Far:               1000,
		},
		Scene: SceneConfig{
			Min: Vec3{-1, -1, -1},
			Max: Vec3{1, 1, 1},
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			ClearColor:  [4]float64{0.1, 0.1, 0.1, 1},
		},
		Profiling: ProfilingConfig{
			Interval: time.Second,
		},
	}
}

// Load reads and parses a YAML configuration file.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the parsed configuration
//   - error: an error if the file cannot be read, decoded or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: an error if decoding or validation fails
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first value that the viewer cannot use.
//
// Returns:
//   - error: nil when the configuration is usable
func (c *Config) Validate() error {
	switch c.Camera.Mode {
	case "examine", "fly", "walk":
	default:
		return fmt.Errorf("config: camera.mode %q must be examine, fly or walk", c.Camera.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("config: camera.speed %v must be positive", c.Camera.Speed)
	}
	if c.Camera.TrackballSize <= 0 {
		return fmt.Errorf("config: camera.trackball_size %v must be positive", c.Camera.TrackballSize)
	}
	if c.Camera.AnimationDuration < 0 {
		return fmt.Errorf("config: camera.animation_duration %v must not be negative", c.Camera.AnimationDuration)
	}
	if c.Camera.Fov < 1 || c.Camera.Fov > 179 {
		return fmt.Errorf("config: camera.fov %v outside [1, 179]", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("config: camera near/far %v/%v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far)
	}
	for i := range 3 {
		if c.Scene.Min[i] > c.Scene.Max[i] {
			return fmt.Errorf("config: scene.min %v exceeds scene.max %v", c.Scene.Min, c.Scene.Max)
		}
	}
	for i, m := range c.Scene.Models {
		if m.Path == "" {
			return fmt.Errorf("config: scene.models[%d].path must not be empty", i)
		}
		if m.Scale < 0 {
			return fmt.Errorf("config: scene.models[%d].scale %v must not be negative", i, m.Scale)
		}
	}
	for i, sp := range c.Scene.Spheres {
		if sp.Radius <= 0 {
			return fmt.Errorf("config: scene.spheres[%d].radius %v must be positive", i, sp.Radius)
		}
	}
	switch c.Renderer.PresentMode {
	case "vsync", "uncapped":
	default:
		return fmt.Errorf("config: renderer.present_mode %q must be vsync or uncapped", c.Renderer.PresentMode)
	}
	return nil
}
