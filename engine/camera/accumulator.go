package camera

import "github.com/go-gl/mathgl/mgl32"

// FrameAccumulator tracks the progressive-refinement frame index of a path tracer.
// The index grows by one per rendered frame and restarts at zero whenever the camera
// view matrix or field of view changes, so accumulated samples never mix two viewpoints.
type FrameAccumulator struct {
	frame   int
	valid   bool
	lastMat mgl32.Mat4
	lastFov float32
}

// NewFrameAccumulator creates an accumulator that restarts on its first Update.
//
// Returns:
//   - *FrameAccumulator: the new accumulator
func NewFrameAccumulator() *FrameAccumulator {
	return &FrameAccumulator{}
}

// Update compares the camera state with the previous frame and returns the frame index
// the renderer should use for this frame.
//
// Parameters:
//   - view: the current view matrix
//   - fov: the current vertical field of view in degrees
//
// Returns:
//   - int: 0 after a change, otherwise one more than the previous index
func (a *FrameAccumulator) Update(view mgl32.Mat4, fov float32) int {
	if !a.valid || view != a.lastMat || fov != a.lastFov {
		a.valid = true
		a.lastMat = view
		a.lastFov = fov
		a.frame = 0
		return a.frame
	}
	a.frame++
	return a.frame
}

// Frame returns the last index handed out by Update.
func (a *FrameAccumulator) Frame() int {
	return a.frame
}

// Reset forces the next Update to restart accumulation.
func (a *FrameAccumulator) Reset() {
	a.valid = false
	a.frame = 0
}
