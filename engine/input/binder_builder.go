package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
)

// BinderOption is a functional option for configuring a binderImpl.
type BinderOption func(*binderImpl)

// WithFitBounds sets the box framed when F is pressed.
//
// Parameters:
//   - boxMin: minimum corner
//   - boxMax: maximum corner
//   - tight: true to fit the box corners rather than its bounding sphere
//
// Returns:
//   - BinderOption: option function to apply
func WithFitBounds(boxMin, boxMax mgl32.Vec3, tight bool) BinderOption {
	return func(b *binderImpl) {
		b.SetFitBounds(boxMin, boxMax, tight)
	}
}

// WithModeChangeCallback sets a function called after a mode key switched the camera mode.
//
// Parameters:
//   - callback: function receiving the new mode
//
// Returns:
//   - BinderOption: option function to apply
func WithModeChangeCallback(callback func(mode camera.Mode)) BinderOption {
	return func(b *binderImpl) {
		b.onModeChange = callback
	}
}
