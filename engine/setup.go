package engine

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rt/engine/loader"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

// ManipulatorOptions converts the camera section of a configuration into manipulator options.
//
// Parameters:
//   - cfg: the camera configuration
//   - width: window width in pixels
//   - height: window height in pixels
//
// Returns:
//   - []camera.CameraManipulatorOption: the options, ready for camera.NewCameraManipulator
//   - error: an error if the mode is unknown
func ManipulatorOptions(cfg config.CameraConfig, width, height int) ([]camera.CameraManipulatorOption, error) {
	mode, err := camera.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return []camera.CameraManipulatorOption{
		camera.WithMode(mode),
		camera.WithSpeed(cfg.Speed),
		camera.WithTrackballSize(cfg.TrackballSize),
		camera.WithAnimationDuration(cfg.AnimationDuration),
		camera.WithWindowSize(width, height),
		camera.WithLookat(vec3(cfg.Eye), vec3(cfg.Center), vec3(cfg.Up)),
		camera.WithFov(cfg.Fov),
	}, nil
}

// BuildScene loads every configured model through the loader and places the model instances and
// spheres in a new scene. Relative model paths are resolved against baseDir when it is not empty.
//
// Parameters:
//   - cfg: the scene configuration
//   - baseDir: directory relative model paths are resolved against
//   - l: the loader used to read model files
//
// Returns:
//   - scene.Scene: the populated scene
//   - error: an error naming the first model that fails to load
func BuildScene(cfg config.SceneConfig, baseDir string, l loader.Loader) (scene.Scene, error) {
	objects := make([]game_object.GameObject, 0, len(cfg.Models)+len(cfg.Spheres))

	for i, m := range cfg.Models {
		path := m.Path
		if baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		info, err := l.Load(path)
		if err != nil {
			return nil, fmt.Errorf("engine: scene model %d: %w", i, err)
		}
		scale := common.Coalesce(m.Scale, 1)
		objects = append(objects, game_object.NewGameObject(
			game_object.WithModel(info),
			game_object.WithName(filepath.Base(m.Path)),
			game_object.WithPosition(m.Position[0], m.Position[1], m.Position[2]),
			game_object.WithRotation(
				mgl32.DegToRad(m.Rotation[0]),
				mgl32.DegToRad(m.Rotation[1]),
				mgl32.DegToRad(m.Rotation[2]),
			),
			game_object.WithScale(scale, scale, scale),
		))
	}

	for i, sp := range cfg.Spheres {
		objects = append(objects, game_object.NewGameObject(
			game_object.WithSphere(sp.Radius),
			game_object.WithName(fmt.Sprintf("sphere %d", i)),
			game_object.WithPosition(sp.Center[0], sp.Center[1], sp.Center[2]),
		))
	}

	return scene.NewScene("main", scene.WithObjects(objects...)), nil
}

// SceneBounds returns the box to fit the camera to: the union of the scene's enabled objects,
// or the configured box when the scene is nil or empty.
//
// Parameters:
//   - sc: the scene, may be nil
//   - cfg: the scene configuration
//
// Returns:
//   - mgl32.Vec3: minimum corner
//   - mgl32.Vec3: maximum corner
func SceneBounds(sc scene.Scene, cfg config.SceneConfig) (mgl32.Vec3, mgl32.Vec3) {
	if sc != nil {
		if lo, hi, ok := sc.Bounds(); ok {
			return lo, hi
		}
	}
	return vec3(cfg.Min), vec3(cfg.Max)
}

func vec3(v config.Vec3) mgl32.Vec3 {
	return mgl32.Vec3(v)
}
