package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/loader"
	"github.com/Carmen-Shannon/oxy-rt/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
	"github.com/Carmen-Shannon/oxy-rt/log"
)

var logger = log.New("engine")

// engine implements the Engine interface.
// Everything runs on the thread that calls Run: window events, camera updates and GPU submission.
type engine struct {
	window      window.Window
	manipulator camera.CameraManipulator
	camera      camera.Camera
	binder      input.Binder
	accumulator *camera.FrameAccumulator
	renderer    renderer.Renderer
	loader      loader.Loader
	scene       scene.Scene
	assetDir    string

	config     *config.Config
	configPath string
	watcher    *config.Watcher
	reloads    <-chan string
	loadConfig func(path string) (*config.Config, error)

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback   func(deltaTime float32)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time

	quitting bool
}

// Engine is the main entry point for the viewer.
// It wires the window, input binder, camera manipulator, camera and renderer together and
// drives them from a single-threaded frame loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Manipulator returns the camera manipulator driven by the input binder.
	//
	// Returns:
	//   - camera.CameraManipulator: the manipulator
	Manipulator() camera.CameraManipulator

	// Camera returns the render camera that mirrors the manipulator each frame.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Binder returns the input binder attached to the window.
	//
	// Returns:
	//   - input.Binder: the binder
	Binder() input.Binder

	// Scene returns the scene whose extent the fit action frames.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Config returns the configuration currently applied.
	//
	// Returns:
	//   - *config.Config: the applied configuration
	Config() *config.Config

	// ApplyConfig applies a configuration to the running components: camera mode, speed,
	// animation duration, field of view, clip planes, scene objects, fit bounds, present mode and
	// profiling. When eye, center or up differ from the previously applied configuration, the camera
	// animates to the new look-at. A scene that fails to load is reported and the previous one kept.
	//
	// Parameters:
	//   - cfg: the configuration to apply
	ApplyConfig(cfg *config.Config)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called each frame after the camera uniform was uploaded.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Frame runs one iteration of the frame loop: apply pending configuration reloads, advance the
	// camera animation, mirror it into the render camera, update the accumulation index, upload and
	// present, then call the render callback and tick the profiler.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - int: the progressive frame index used for this frame
	Frame(deltaTime float32) int

	// Run starts the frame loop on the calling thread (blocks until the window closes),
	// then releases the renderer, the config watcher and the window.
	Run()

	// Quit asks the frame loop to stop after the current frame.
	// Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Components not supplied through options are created from the configuration (config.Default()
// when none is given). A window is required.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: an error if no window was given, the configuration is invalid or the watcher cannot start
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		accumulator: camera.NewFrameAccumulator(),
		loadConfig:  config.Load,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, fmt.Errorf("engine: a window is required")
	}
	if e.config == nil {
		e.config = config.Default()
	}
	if err := e.config.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	width, height := e.window.Width(), e.window.Height()
	if e.manipulator == nil {
		opts, err := ManipulatorOptions(e.config.Camera, width, height)
		if err != nil {
			return nil, err
		}
		e.manipulator = camera.NewCameraManipulator(opts...)
	} else {
		e.manipulator.SetWindowSize(width, height)
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(
			camera.WithAspect(aspect(width, height)),
			camera.WithNear(e.config.Camera.Near),
			camera.WithFar(e.config.Camera.Far),
			camera.WithManipulator(e.manipulator),
		)
	} else if e.camera.Manipulator() == nil {
		e.camera.SetManipulator(e.manipulator)
	}
	if e.binder == nil {
		e.binder = input.NewBinder(e.manipulator, input.WithModeChangeCallback(e.showMode))
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.config.Profiling.Interval)
	}
	if e.loader == nil {
		e.loader = loader.NewLoader(loader.BackendTypeGLTF)
	}
	if e.scene == nil {
		sc, err := BuildScene(e.config.Scene, e.assetDir, e.loader)
		if err != nil {
			return nil, err
		}
		e.scene = sc
	}
	e.logSceneStats()
	if e.config.Profiling.Enabled {
		e.profilingEnabled = true
	}

	bmin, bmax := SceneBounds(e.scene, e.config.Scene)
	e.binder.SetFitBounds(bmin, bmax, e.config.Scene.TightFit)
	e.binder.Attach(e.window)

	if e.configPath != "" && e.reloads == nil {
		w, err := config.NewWatcher(e.configPath)
		if err != nil {
			return nil, fmt.Errorf("engine: watch %s: %w", e.configPath, err)
		}
		e.watcher = w
		e.reloads = w.Events
	}

	e.window.SetResizeCallback(e.resize)
	e.showMode(e.manipulator.Mode())

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Manipulator() camera.CameraManipulator {
	return e.manipulator
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Binder() input.Binder {
	return e.binder
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Config() *config.Config {
	return e.config
}

func (e *engine) ApplyConfig(cfg *config.Config) {
	prev := e.config
	e.config = cfg

	if mode, err := camera.ParseMode(cfg.Camera.Mode); err == nil && mode != e.manipulator.Mode() {
		e.manipulator.SetMode(mode)
		e.showMode(mode)
	}
	e.manipulator.SetSpeed(cfg.Camera.Speed)
	e.manipulator.SetAnimationDuration(cfg.Camera.AnimationDuration)
	if prev == nil || prev.Camera.Fov != cfg.Camera.Fov {
		e.manipulator.SetFov(cfg.Camera.Fov)
	}
	if prev == nil || prev.Camera.Eye != cfg.Camera.Eye || prev.Camera.Center != cfg.Camera.Center || prev.Camera.Up != cfg.Camera.Up {
		e.manipulator.SetLookat(vec3(cfg.Camera.Eye), vec3(cfg.Camera.Center), vec3(cfg.Camera.Up), false)
	}

	e.camera.SetNear(cfg.Camera.Near)
	e.camera.SetFar(cfg.Camera.Far)

	if prev == nil || !slices.Equal(prev.Scene.Models, cfg.Scene.Models) || !slices.Equal(prev.Scene.Spheres, cfg.Scene.Spheres) {
		if sc, err := BuildScene(cfg.Scene, e.assetDir, e.loader); err != nil {
			logger.Warningf("scene reload rejected, keeping %d objects: %v", e.scene.Count(), err)
		} else {
			e.scene = sc
			e.logSceneStats()
		}
	}
	bmin, bmax := SceneBounds(e.scene, cfg.Scene)
	e.binder.SetFitBounds(bmin, bmax, cfg.Scene.TightFit)

	if e.renderer != nil && (prev == nil || prev.Renderer.PresentMode != cfg.Renderer.PresentMode) {
		e.renderer.SetPresentMode(renderer.ParsePresentMode(cfg.Renderer.PresentMode))
		e.renderer.Resize(e.window.Width(), e.window.Height())
	}

	e.profilingEnabled = cfg.Profiling.Enabled
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Frame(deltaTime float32) int {
	e.drainReloads()

	e.manipulator.UpdateAnim()
	e.camera.Update()
	frame := e.accumulator.Update(e.camera.ViewMatrix(), e.camera.Fov())

	if e.renderer != nil {
		e.renderer.WriteCamera(e.camera.Matrices(), frame)
		if err := e.renderer.RenderFrame(); err != nil {
			// An outdated surface after a resize is expected; the next configure fixes it.
			logger.Debugf("frame skipped: %v", err)
		}
	}

	if e.renderCallback != nil {
		e.renderCallback(deltaTime)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(frame)
	}

	return frame
}

func (e *engine) Run() {
	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.tick)
	e.window.ProcessMessages()
	e.shutdown()
}

func (e *engine) Quit() {
	if e.quitting {
		return
	}
	e.quitting = true
	e.window.RequestClose()
}

// tick is the window update callback: one frame plus the optional frame rate cap.
func (e *engine) tick() {
	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.Frame(dt)

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// drainReloads applies every pending configuration change without blocking the frame.
func (e *engine) drainReloads() {
	for {
		select {
		case path, ok := <-e.reloads:
			if !ok {
				e.reloads = nil
				return
			}
			cfg, err := e.loadConfig(path)
			if err != nil {
				logger.Warningf("config reload rejected: %v", err)
				continue
			}
			e.ApplyConfig(cfg)
			logger.Noticef("config reloaded from %s", path)
		default:
			return
		}
	}
}

// resize keeps the manipulator, the projection, the surface and the accumulation in step with the framebuffer.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.binder.Resize(width, height)
	e.camera.SetAspect(aspect(width, height))
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	e.accumulator.Reset()
}

func (e *engine) logSceneStats() {
	st := e.scene.Stats()
	if lo, hi, ok := e.scene.Bounds(); ok {
		logger.Infof("scene: %d meshes (%d triangles), %d spheres, bounds %v - %v", st.Meshes, st.Triangles, st.Spheres, lo, hi)
		return
	}
	logger.Infof("scene: empty, fitting to configured box")
}

func (e *engine) showMode(mode camera.Mode) {
	e.window.SetTitle(fmt.Sprintf("%s [%s]", e.config.Window.Title, mode))
}

func (e *engine) shutdown() {
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			logger.Warningf("closing config watcher: %v", err)
		}
	}
	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.window.Close(); err != nil {
		logger.Warningf("closing window: %v", err)
	}
}

func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
