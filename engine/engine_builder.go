package engine

import (
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/loader"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
// A configuration with profiling enabled turns it on regardless.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine presents to and reads input from.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithConfig sets the initial configuration. Defaults to config.Default().
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg *config.Config) EngineBuilderOption {
	return func(e *engine) {
		e.config = cfg
	}
}

// WithConfigFile watches the given configuration file and applies changes between frames.
//
// Parameters:
//   - path: the YAML file to watch
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigFile(path string) EngineBuilderOption {
	return func(e *engine) {
		e.configPath = path
	}
}

// WithManipulator supplies a manipulator instead of building one from the configuration.
//
// Parameters:
//   - m: the manipulator
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithManipulator(m camera.CameraManipulator) EngineBuilderOption {
	return func(e *engine) {
		e.manipulator = m
	}
}

// WithCamera supplies the render camera. A camera without a manipulator gets the engine's manipulator.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithBinder supplies the input binder instead of building one around the manipulator.
//
// Parameters:
//   - b: the binder
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBinder(b input.Binder) EngineBuilderOption {
	return func(e *engine) {
		e.binder = b
	}
}

// WithRenderer sets the GPU collaborator that receives the camera uniform and presents each frame.
// Without one the engine runs the camera loop only.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithLoader sets the model loader used to build the scene. Defaults to a glTF loader.
//
// Parameters:
//   - l: the loader
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLoader(l loader.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.loader = l
	}
}

// WithScene supplies the scene instead of building one from the configuration.
// A later configuration reload with different scene objects replaces it.
//
// Parameters:
//   - sc: the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(sc scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = sc
	}
}

// WithAssetDir sets the directory relative model paths in the configuration are resolved against,
// usually the directory of the configuration file.
//
// Parameters:
//   - dir: the base directory
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAssetDir(dir string) EngineBuilderOption {
	return func(e *engine) {
		e.assetDir = dir
	}
}
