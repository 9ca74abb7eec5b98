package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraManipulatorOption is a functional option for configuring a CameraManipulator.
type CameraManipulatorOption func(*cameraManipulatorImpl)

// WithClock sets the frame clock used to time animations.
//
// Parameters:
//   - clock: the clock to read from
//
// Returns:
//   - CameraManipulatorOption: functional option to set the clock
func WithClock(clock Clock) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		m.clock = clock
	}
}

// WithMode sets the initial navigation mode.
//
// Parameters:
//   - mode: Examine, Fly or Walk
//
// Returns:
//   - CameraManipulatorOption: functional option to set the mode
func WithMode(mode Mode) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		m.mode = mode
	}
}

// WithSpeed sets the gesture speed multiplier.
//
// Parameters:
//   - speed: multiplier for orbit, pan, dolly and key motion
//
// Returns:
//   - CameraManipulatorOption: functional option to set the speed
func WithSpeed(speed float32) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		m.speed = speed
	}
}

// WithTrackballSize sets the trackball size. Orbit angles are divided by it.
//
// Parameters:
//   - size: trackball size (values <= 0 are ignored)
//
// Returns:
//   - CameraManipulatorOption: functional option to set the trackball size
func WithTrackballSize(size float32) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		if size > 0 {
			m.tbsize = size
		}
	}
}

// WithAnimationDuration sets the length of animated transitions.
//
// Parameters:
//   - seconds: transition length in seconds
//
// Returns:
//   - CameraManipulatorOption: functional option to set the duration
func WithAnimationDuration(seconds float64) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		if seconds >= 0 {
			m.duration = seconds
		}
	}
}

// WithWindowSize sets the initial viewport size.
//
// Parameters:
//   - width, height: size in pixels
//
// Returns:
//   - CameraManipulatorOption: functional option to set the window size
func WithWindowSize(width, height int) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		m.SetWindowSize(width, height)
	}
}

// WithLookat sets the initial eye, center and up vectors.
//
// Parameters:
//   - eye: camera position
//   - center: point of interest
//   - up: up direction
//
// Returns:
//   - CameraManipulatorOption: functional option to set the initial pose
func WithLookat(eye, center, up mgl32.Vec3) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		m.current.Eye = eye
		m.current.Center = center
		m.current.Up = up
	}
}

// WithFov sets the initial vertical field of view.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraManipulatorOption: functional option to set the field of view
func WithFov(fov float32) CameraManipulatorOption {
	return func(m *cameraManipulatorImpl) {
		m.current.Fov = fov
	}
}
