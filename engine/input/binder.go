package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/log"
)

var logger = log.New("input")

// EventSource is the part of a window the binder subscribes to.
// window.Window satisfies it.
type EventSource interface {
	SetMouseDownCallback(callback func(button common.MouseButton, x, y int32))
	SetMouseUpCallback(callback func(button common.MouseButton, x, y int32))
	SetMouseMoveCallback(callback func(x, y int32))
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
}

// keyMotion is the KeyMotion contribution of one held key.
type keyMotion struct {
	dx, dy float32
	action camera.Action
}

var motionKeys = map[uint32]keyMotion{
	common.KeyW:     {1, 0, camera.Dolly},
	common.KeyUp:    {1, 0, camera.Dolly},
	common.KeyS:     {-1, 0, camera.Dolly},
	common.KeyDown:  {-1, 0, camera.Dolly},
	common.KeyA:     {-1, 0, camera.Pan},
	common.KeyLeft:  {-1, 0, camera.Pan},
	common.KeyD:     {1, 0, camera.Pan},
	common.KeyRight: {1, 0, camera.Pan},
	common.KeyQ:     {0, -1, camera.Pan},
	common.KeyE:     {0, 1, camera.Pan},
}

var modeKeys = map[uint32]camera.Mode{
	common.Key1: camera.Examine,
	common.Key2: camera.Fly,
	common.Key3: camera.Walk,
}

type binderImpl struct {
	manipulator camera.CameraManipulator

	inputs camera.Inputs
	mods   map[uint32]bool
	held   map[uint32]bool

	boundsSet bool
	boundsMin mgl32.Vec3
	boundsMax mgl32.Vec3
	tightFit  bool

	onModeChange func(mode camera.Mode)
}

// Binder translates raw window events into CameraManipulator calls.
// It owns the per-event Inputs snapshot (buttons and modifiers) and the set of held motion keys.
// All methods must be called from the thread that runs the frame loop.
type Binder interface {
	// Attach registers the binder's handlers on the event source, replacing any existing
	// mouse, scroll and key callbacks.
	//
	// Parameters:
	//   - source: the window to listen to
	Attach(source EventSource)

	// MouseDown marks the button as held and records the press position on the manipulator.
	//
	// Parameters:
	//   - button: the pressed button
	//   - x: cursor x position in pixels
	//   - y: cursor y position in pixels
	MouseDown(button common.MouseButton, x, y int32)

	// MouseUp releases the button.
	//
	// Parameters:
	//   - button: the released button
	//   - x: cursor x position in pixels
	//   - y: cursor y position in pixels
	MouseUp(button common.MouseButton, x, y int32)

	// MouseMove forwards the cursor position to the manipulator with the current Inputs.
	//
	// Parameters:
	//   - x: cursor x position in pixels
	//   - y: cursor y position in pixels
	//
	// Returns:
	//   - camera.Action: the action the manipulator applied
	MouseMove(x, y int32) camera.Action

	// Scroll forwards one wheel event. Fractional deltas from touchpads round away from zero
	// so that every event moves the camera.
	//
	// Parameters:
	//   - delta: wheel delta, positive away from the user
	Scroll(delta float32)

	// KeyDown handles modifiers, motion keys, mode keys (1/2/3), fit (F) and help (H).
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyDown(keyCode uint32)

	// KeyUp releases modifiers and motion keys.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyUp(keyCode uint32)

	// Resize forwards the new framebuffer size to the manipulator.
	//
	// Parameters:
	//   - width: width in pixels
	//   - height: height in pixels
	Resize(width, height int)

	// SetFitBounds sets the box framed by the F key.
	//
	// Parameters:
	//   - boxMin: minimum corner
	//   - boxMax: maximum corner
	//   - tight: true to fit the box corners rather than its bounding sphere
	SetFitBounds(boxMin, boxMax mgl32.Vec3, tight bool)

	// Inputs returns the current button and modifier snapshot.
	//
	// Returns:
	//   - camera.Inputs: the current inputs
	Inputs() camera.Inputs
}

var _ Binder = &binderImpl{}

// NewBinder creates a Binder driving the given manipulator.
//
// Parameters:
//   - manipulator: the manipulator to drive
//   - options: functional options to configure the binder
//
// Returns:
//   - Binder: the new binder
func NewBinder(manipulator camera.CameraManipulator, options ...BinderOption) Binder {
	b := &binderImpl{
		manipulator: manipulator,
		mods:        make(map[uint32]bool),
		held:        make(map[uint32]bool),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *binderImpl) Attach(source EventSource) {
	source.SetMouseDownCallback(b.MouseDown)
	source.SetMouseUpCallback(b.MouseUp)
	source.SetMouseMoveCallback(func(x, y int32) { b.MouseMove(x, y) })
	source.SetScrollCallback(b.Scroll)
	source.SetKeyDownCallback(b.KeyDown)
	source.SetKeyUpCallback(b.KeyUp)
}

func (b *binderImpl) MouseDown(button common.MouseButton, x, y int32) {
	b.setButton(button, true)
	b.manipulator.SetMousePosition(int(x), int(y))
}

func (b *binderImpl) MouseUp(button common.MouseButton, x, y int32) {
	b.setButton(button, false)
}

func (b *binderImpl) MouseMove(x, y int32) camera.Action {
	return b.manipulator.MouseMove(int(x), int(y), b.inputs)
}

func (b *binderImpl) Scroll(delta float32) {
	if delta == 0 {
		return
	}
	value := int(math.Round(float64(delta)))
	if value == 0 {
		value = 1
		if delta < 0 {
			value = -1
		}
	}
	b.manipulator.Wheel(value, b.inputs)
}

func (b *binderImpl) KeyDown(keyCode uint32) {
	if b.setModifier(keyCode, true) {
		return
	}

	if _, ok := motionKeys[keyCode]; ok {
		if !b.held[keyCode] {
			b.held[keyCode] = true
			b.rebuildKeyMotion()
		}
		return
	}

	if mode, ok := modeKeys[keyCode]; ok {
		if b.manipulator.Mode() != mode {
			b.manipulator.SetMode(mode)
			logger.Noticef("camera mode: %s", mode)
			if b.onModeChange != nil {
				b.onModeChange(mode)
			}
		}
		return
	}

	switch keyCode {
	case common.KeyF:
		b.fit()
	case common.KeyH:
		logger.Notice("camera controls:\n" + b.manipulator.Help())
	}
}

func (b *binderImpl) KeyUp(keyCode uint32) {
	if b.setModifier(keyCode, false) {
		return
	}
	if b.held[keyCode] {
		delete(b.held, keyCode)
		b.rebuildKeyMotion()
	}
}

func (b *binderImpl) Resize(width, height int) {
	b.manipulator.SetWindowSize(width, height)
}

func (b *binderImpl) SetFitBounds(boxMin, boxMax mgl32.Vec3, tight bool) {
	b.boundsSet = true
	b.boundsMin = boxMin
	b.boundsMax = boxMax
	b.tightFit = tight
}

func (b *binderImpl) Inputs() camera.Inputs {
	return b.inputs
}

func (b *binderImpl) setButton(button common.MouseButton, down bool) {
	switch button {
	case common.MouseButtonLeft:
		b.inputs.LMB = down
	case common.MouseButtonMiddle:
		b.inputs.MMB = down
	case common.MouseButtonRight:
		b.inputs.RMB = down
	}
}

// setModifier updates the modifier flags and reports whether keyCode was a modifier.
// Left and right keys are tracked separately so releasing one keeps the other effective.
func (b *binderImpl) setModifier(keyCode uint32, down bool) bool {
	switch keyCode {
	case common.KeyLeftShift, common.KeyRightShift,
		common.KeyLeftControl, common.KeyRightControl,
		common.KeyLeftAlt, common.KeyRightAlt:
	default:
		return false
	}
	if down {
		b.mods[keyCode] = true
	} else {
		delete(b.mods, keyCode)
	}
	b.inputs.Shift = b.mods[common.KeyLeftShift] || b.mods[common.KeyRightShift]
	b.inputs.Ctrl = b.mods[common.KeyLeftControl] || b.mods[common.KeyRightControl]
	b.inputs.Alt = b.mods[common.KeyLeftAlt] || b.mods[common.KeyRightAlt]
	return true
}

// rebuildKeyMotion resets the manipulator's key velocity and re-adds every held key.
func (b *binderImpl) rebuildKeyMotion() {
	b.manipulator.KeyMotion(0, 0, camera.NoAction)
	for code := range b.held {
		km := motionKeys[code]
		b.manipulator.KeyMotion(km.dx, km.dy, km.action)
	}
}

func (b *binderImpl) fit() {
	if !b.boundsSet {
		logger.Warning("fit requested but no scene bounds are configured")
		return
	}
	w, h := b.manipulator.WindowSize()
	b.manipulator.Fit(b.boundsMin, b.boundsMax, false, b.tightFit, float32(w)/float32(h))
	logger.Debugf("fit to %v - %v (tight=%t)", b.boundsMin, b.boundsMax, b.tightFit)
}
