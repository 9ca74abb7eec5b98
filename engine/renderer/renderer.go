package renderer

import (
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceSource provides what the renderer needs from a window to create and size a WebGPU surface.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	clearColor           [4]float64
}

// Renderer defines the interface for the GPU presentation collaborator.
//
// The ray tracing pipeline itself lives outside this module; the Renderer owns the device, the
// surface and the camera uniform buffer that the pipeline binds, and presents one frame per call
// to RenderFrame.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// WriteCamera uploads the camera matrices and the progressive frame index to the camera uniform buffer.
	//
	// Parameters:
	//   - matrices: the camera uniform data
	//   - frame: the progressive frame index (0 restarts accumulation)
	WriteCamera(matrices camera.GPUCameraMatrices, frame int)

	// RenderFrame acquires the next surface texture, records the frame and presents it.
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired or the frame could not be recorded
	RenderFrame() error

	// Release frees every GPU object owned by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type, drawing to the window's surface.
// The surface descriptor is platform-specific and is typically obtained from Window.SurfaceDescriptor().
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the surface source to present to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: an error if the adapter, device or camera buffer could not be created
func NewRenderer(backendType RendererBackendType, window SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		backendType: backendType,
		clearColor:  [4]float64{0.1, 0.1, 0.1, 1.0},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err := newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.clearColor)
		if err != nil {
			return nil, err
		}
		r.backend = backend
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) WriteCamera(matrices camera.GPUCameraMatrices, frame int) {
	r.backend.WriteCamera(matrices.Marshal(), uint32(frame))
}

func (r *renderer) RenderFrame() error {
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
