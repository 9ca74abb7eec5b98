package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
)

const (
	// DefaultSpeed is the default gesture speed multiplier.
	DefaultSpeed float32 = 3.0
	// DefaultTrackballSize is the default trackball size; smaller values orbit faster.
	DefaultTrackballSize float32 = 0.8
	// DefaultAnimationDuration is the default length of an animated transition in seconds.
	DefaultAnimationDuration = 0.5

	// MinDistance is the smallest eye-center distance the manipulator will produce.
	MinDistance float32 = 1e-3
	// PoleEpsilon is how close (radians) the view direction may get to the up axis while orbiting.
	PoleEpsilon float32 = 1e-3

	// MinFov and MaxFov bound the vertical field of view in degrees.
	MinFov float32 = 1
	MaxFov float32 = 179
)

// animState is the manipulator's two-state animation machine.
type animState int

const (
	// animIdle: current == goal == snapshot.
	animIdle animState = iota
	// animAnimating: current travels from snapshot to goal.
	animAnimating
)

// CameraManipulator converts pointer, wheel and keyboard input into camera poses.
// It owns the current pose, the goal pose of an in-flight transition and the animation clock.
// All methods must be called from a single thread; there is no internal locking.
type CameraManipulator interface {
	// MouseMove interprets a pointer move with the given button/modifier state.
	// With no button held the position is only recorded.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	//   - inputs: button and modifier state
	//
	// Returns:
	//   - Action: the action that was applied
	MouseMove(x, y int, inputs Inputs) Action

	// Motion applies action for a pointer move to (x, y), relative to the last recorded position.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	//   - action: the action to apply
	Motion(x, y int, action Action)

	// KeyMotion accumulates a keyboard-driven velocity applied by UpdateAnim.
	// Dolly uses dx along the view direction, Pan uses dx along the right axis and dy along up.
	// NoAction clears the accumulated velocity.
	//
	// Parameters:
	//   - dx, dy: axis deltas, usually -1, 0 or 1
	//   - action: Dolly, Pan or NoAction
	KeyMotion(dx, dy float32, action Action)

	// Wheel handles one wheel step. With Shift held it changes the field of view,
	// otherwise it dollies; positive values move towards the center.
	//
	// Parameters:
	//   - value: signed wheel steps
	//   - inputs: button and modifier state
	Wheel(value int, inputs Inputs)

	// SetLookat places the camera. With instantSet the pose applies immediately,
	// otherwise the camera animates towards it over AnimationDuration.
	//
	// Parameters:
	//   - eye: camera position
	//   - center: point of interest
	//   - up: up direction
	//   - instantSet: skip the animation
	SetLookat(eye, center, up mgl32.Vec3, instantSet bool)

	// Lookat returns the current eye, center and up vectors.
	//
	// Returns:
	//   - eye, center, up: the current pose vectors
	Lookat() (eye, center, up mgl32.Vec3)

	// SetCamera sets the full pose, field of view included.
	//
	// Parameters:
	//   - pose: the new pose
	//   - instantSet: skip the animation
	SetCamera(pose Pose, instantSet bool)

	// Camera returns the current pose.
	//
	// Returns:
	//   - Pose: the pose rendered this frame
	Camera() Pose

	// Goal returns the pose the camera is animating towards (the current pose when idle).
	//
	// Returns:
	//   - Pose: the goal pose
	Goal() Pose

	// SetMatrix derives a pose from a view matrix, placing the center centerDistance in front of the eye.
	//
	// Parameters:
	//   - view: world-to-view matrix, as returned by Matrix
	//   - instantSet: skip the animation
	//   - centerDistance: distance of the center from the eye (non-positive means 1)
	SetMatrix(view mgl32.Mat4, instantSet bool, centerDistance float32)

	// Matrix returns the view matrix of the current pose.
	//
	// Returns:
	//   - mgl32.Mat4: right-handed look-at matrix (column-major)
	Matrix() mgl32.Mat4

	// UpdateAnim advances key motion and any in-flight animation. Call exactly once per frame.
	UpdateAnim()

	// IsAnimated reports whether a transition is in flight.
	//
	// Returns:
	//   - bool: true while animating
	IsAnimated() bool

	// IsMoving reports whether the last MouseMove was a drag (a button was held).
	//
	// Returns:
	//   - bool: true while dragging
	IsMoving() bool

	// Fit frames the axis-aligned box, keeping the current view direction.
	//
	// Parameters:
	//   - boxMin, boxMax: box corners
	//   - instantFit: skip the animation
	//   - tight: fit the box corners instead of the bounding sphere
	//   - aspect: viewport aspect ratio (width/height)
	Fit(boxMin, boxMax mgl32.Vec3, instantFit, tight bool, aspect float32)

	// SetWindowSize sets the viewport size used to normalize pointer deltas.
	// Non-positive values are treated as 1.
	//
	// Parameters:
	//   - width, height: size in pixels
	SetWindowSize(width, height int)

	// WindowSize returns the viewport size.
	//
	// Returns:
	//   - width, height: size in pixels
	WindowSize() (width, height int)

	// SetMousePosition records the pointer position, typically on button press.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	SetMousePosition(x, y int)

	// MousePosition returns the last recorded pointer position.
	//
	// Returns:
	//   - x, y: pointer position in pixels
	MousePosition() (x, y int)

	// Mode returns the navigation mode.
	//
	// Returns:
	//   - Mode: Examine, Fly or Walk
	Mode() Mode

	// SetMode changes the navigation mode.
	//
	// Parameters:
	//   - mode: Examine, Fly or Walk
	SetMode(mode Mode)

	// Speed returns the gesture speed multiplier.
	//
	// Returns:
	//   - float32: the speed
	Speed() float32

	// SetSpeed changes the gesture speed multiplier.
	//
	// Parameters:
	//   - speed: the new speed
	SetSpeed(speed float32)

	// Fov returns the current vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// SetFov sets the vertical field of view, clamped to [MinFov, MaxFov].
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// AnimationDuration returns the transition length in seconds.
	//
	// Returns:
	//   - float64: duration in seconds
	AnimationDuration() float64

	// SetAnimationDuration sets the transition length in seconds.
	//
	// Parameters:
	//   - seconds: duration in seconds
	SetAnimationDuration(seconds float64)

	// Help returns a human readable list of the gesture bindings.
	//
	// Returns:
	//   - string: one binding per line
	Help() string
}

type cameraManipulatorImpl struct {
	matrix mgl32.Mat4

	current  Pose
	goal     Pose
	snapshot Pose

	// animation
	state     animState
	bezier    [3]mgl32.Vec3
	startTime float64
	duration  float64
	keyVec    mgl32.Vec3
	keyTime   float64
	clock     Clock

	// screen
	width  int
	height int

	speed  float32
	tbsize float32
	mouse  [2]int
	moving bool

	mode Mode
}

// Compile-time interface compliance check
var _ CameraManipulator = &cameraManipulatorImpl{}

// NewCameraManipulator creates a manipulator at DefaultPose in Examine mode.
// Create one per application and pass it to every component that needs it.
//
// Parameters:
//   - options: functional options to configure the manipulator
//
// Returns:
//   - CameraManipulator: the newly created manipulator
func NewCameraManipulator(options ...CameraManipulatorOption) CameraManipulator {
	m := &cameraManipulatorImpl{
		current:  DefaultPose(),
		duration: DefaultAnimationDuration,
		width:    1,
		height:   1,
		speed:    DefaultSpeed,
		tbsize:   DefaultTrackballSize,
		mode:     Examine,
	}
	for _, option := range options {
		option(m)
	}
	if m.clock == nil {
		m.clock = NewSystemClock()
	}
	m.current = sanitizePose(m.current)
	m.commit()
	return m
}

// update recomputes the view matrix from the current pose.
func (m *cameraManipulatorImpl) update() {
	m.matrix = common.LookAt(m.current.Eye, m.current.Center, m.current.Up)
}

// commit makes the current pose the resting pose: goal and snapshot follow it and any animation ends.
func (m *cameraManipulatorImpl) commit() {
	m.goal = m.current
	m.snapshot = m.current
	m.state = animIdle
	m.update()
}

// sanitizePose nudges degenerate poses into valid ones.
func sanitizePose(p Pose) Pose {
	if !common.IsFinite(p.Eye) {
		p.Eye = DefaultPose().Eye
	}
	if !common.IsFinite(p.Center) {
		p.Center = mgl32.Vec3{}
	}
	if p.Eye.Sub(p.Center).Len() < MinDistance {
		p.Eye = p.Center.Add(mgl32.Vec3{0, 0, MinDistance})
	}
	if !common.IsFinite(p.Up) || p.Up.Len() < common.Epsilon {
		p.Up = mgl32.Vec3{0, 1, 0}
	}
	p.Fov = clampFov(p.Fov)
	return p
}

func clampFov(fov float32) float32 {
	if fov != fov {
		return DefaultPose().Fov
	}
	return mgl32.Clamp(fov, MinFov, MaxFov)
}

func (m *cameraManipulatorImpl) MouseMove(x, y int, inputs Inputs) Action {
	if !inputs.AnyButton() {
		m.moving = false
		m.SetMousePosition(x, y)
		return NoAction
	}

	action := m.dispatch(inputs)
	if action != NoAction {
		m.moving = true
		m.Motion(x, y, action)
	}
	return action
}

// dispatch resolves the action for a button/modifier combination in the current mode.
func (m *cameraManipulatorImpl) dispatch(inputs Inputs) Action {
	switch {
	case inputs.LMB:
		switch {
		case (inputs.Ctrl && inputs.Shift) || inputs.Alt:
			if m.mode == Examine {
				return LookAround
			}
			return Orbit
		case inputs.Shift:
			return Dolly
		case inputs.Ctrl:
			return Pan
		case m.mode == Examine:
			return Orbit
		default:
			return LookAround
		}
	case inputs.MMB:
		return Pan
	case inputs.RMB:
		return Dolly
	}
	return NoAction
}

func (m *cameraManipulatorImpl) SetLookat(eye, center, up mgl32.Vec3, instantSet bool) {
	m.SetCamera(Pose{Eye: eye, Center: center, Up: up, Fov: m.current.Fov}, instantSet)
}

func (m *cameraManipulatorImpl) Lookat() (eye, center, up mgl32.Vec3) {
	return m.current.Eye, m.current.Center, m.current.Up
}

func (m *cameraManipulatorImpl) Camera() Pose {
	return m.current
}

func (m *cameraManipulatorImpl) Goal() Pose {
	return m.goal
}

func (m *cameraManipulatorImpl) SetMatrix(view mgl32.Mat4, instantSet bool, centerDistance float32) {
	if centerDistance <= 0 {
		centerDistance = 1
	}
	inv := view.Inv()
	eye := inv.Col(3).Vec3()
	back := common.SafeNormalize(inv.Col(2).Vec3(), mgl32.Vec3{0, 0, 1})
	up := common.SafeNormalize(inv.Col(1).Vec3(), mgl32.Vec3{0, 1, 0})
	m.SetCamera(Pose{
		Eye:    eye,
		Center: eye.Sub(back.Mul(centerDistance)),
		Up:     up,
		Fov:    m.current.Fov,
	}, instantSet)
}

func (m *cameraManipulatorImpl) Matrix() mgl32.Mat4 {
	return m.matrix
}

func (m *cameraManipulatorImpl) IsAnimated() bool {
	return m.state == animAnimating
}

func (m *cameraManipulatorImpl) IsMoving() bool {
	return m.moving
}

func (m *cameraManipulatorImpl) SetWindowSize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	m.width = width
	m.height = height
}

func (m *cameraManipulatorImpl) WindowSize() (width, height int) {
	return m.width, m.height
}

func (m *cameraManipulatorImpl) SetMousePosition(x, y int) {
	m.mouse = [2]int{x, y}
}

func (m *cameraManipulatorImpl) MousePosition() (x, y int) {
	return m.mouse[0], m.mouse[1]
}

func (m *cameraManipulatorImpl) Mode() Mode {
	return m.mode
}

func (m *cameraManipulatorImpl) SetMode(mode Mode) {
	m.mode = mode
}

func (m *cameraManipulatorImpl) Speed() float32 {
	return m.speed
}

func (m *cameraManipulatorImpl) SetSpeed(speed float32) {
	m.speed = speed
}

func (m *cameraManipulatorImpl) Fov() float32 {
	return m.current.Fov
}

func (m *cameraManipulatorImpl) SetFov(fov float32) {
	fov = clampFov(fov)
	if m.state == animAnimating {
		// keep the transition running with the new field of view
		m.current.Fov = fov
		m.snapshot.Fov = fov
		m.goal.Fov = fov
		return
	}
	m.current.Fov = fov
	m.commit()
}

func (m *cameraManipulatorImpl) AnimationDuration() float64 {
	return m.duration
}

func (m *cameraManipulatorImpl) SetAnimationDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	m.duration = seconds
}
