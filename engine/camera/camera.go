package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	aspect float32
	near   float32
	far    float32
	fov    float32 // degrees, mirrored from the manipulator on Update

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	viewProjectionMatrix    mgl32.Mat4
	inverseViewMatrix       mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4

	manipulator CameraManipulator
}

// Camera defines the interface for the render-facing camera.
// The camera holds projection settings and mirrors the view matrix and field of view of an
// attached CameraManipulator each frame via Update().
type Camera interface {
	// Fov returns the vertical field of view in degrees, as of the last Update.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix ([0, 1] depth range).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the view frustum of the current view-projection matrix.
	//
	// Returns:
	//   - common.Frustum: planes facing into the visible volume
	Frustum() common.Frustum

	// Matrices returns the uniform block consumed by the ray generation shader:
	// view, projection and their inverses.
	//
	// Returns:
	//   - GPUCameraMatrices: the uniform data
	Matrices() GPUCameraMatrices

	// Manipulator returns the attached manipulator, or nil.
	//
	// Returns:
	//   - CameraManipulator: the attached manipulator or nil
	Manipulator() CameraManipulator

	// Update reads the view matrix and field of view from the manipulator and recomputes matrices.
	// Should be called once per frame after CameraManipulator.UpdateAnim.
	// If no manipulator is attached, this method does nothing.
	Update()

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetManipulator attaches a CameraManipulator to the camera.
	//
	// Parameters:
	//   - m: the manipulator to attach
	SetManipulator(m CameraManipulator)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the projection used by the ray tracer
// (aspect 1, near 0.1, far 1000).
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		aspect:               1.0,
		near:                 0.1,
		far:                  1000.0,
		fov:                  DefaultPose().Fov,
		viewMatrix:           mgl32.Ident4(),
		inverseViewMatrix:    mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustum(c.viewProjectionMatrix)
}

func (c *cameraImpl) Matrices() GPUCameraMatrices {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraMatrices{
		View:        c.viewMatrix,
		Proj:        c.projectionMatrix,
		ViewInverse: c.inverseViewMatrix,
		ProjInverse: c.inverseProjectionMatrix,
	}
}

func (c *cameraImpl) Manipulator() CameraManipulator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manipulator
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.manipulator == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetManipulator(m CameraManipulator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manipulator = m
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, view-projection and inverse matrices.
// View matrix and field of view come from the manipulator when one is attached.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.manipulator != nil {
		c.viewMatrix = c.manipulator.Matrix()
		c.fov = c.manipulator.Fov()
	}

	c.projectionMatrix = common.PerspectiveZO(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseViewMatrix = c.viewMatrix.Inv()
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()
}
