package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraMatricesSource is the canonical WGSL definition of the CameraMatrices struct.
// Matches GPUCameraMatrices layout exactly (256 bytes).
//
//go:embed assets/camera_matrices.wgsl
var GPUCameraMatricesSource string

// GPUCameraMatrices is the GPU-aligned camera uniform read by the ray generation and
// post-processing shaders. Ray generation uses the inverses to turn pixel coordinates
// into world-space rays.
// Size: 256 bytes (four mat4x4<f32>).
type GPUCameraMatrices struct {
	View        [16]float32 // offset   0: world-to-view
	Proj        [16]float32 // offset  64: view-to-clip
	ViewInverse [16]float32 // offset 128: view-to-world
	ProjInverse [16]float32 // offset 192: clip-to-view
}

// Size returns the size of the GPUCameraMatrices struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (256)
func (g *GPUCameraMatrices) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the matrices little-endian, column-major, for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraMatrices) Marshal() []byte {
	buf := make([]byte, g.Size())
	for m, mat := range [4]*[16]float32{&g.View, &g.Proj, &g.ViewInverse, &g.ProjInverse} {
		for i := range 16 {
			binary.LittleEndian.PutUint32(buf[m*64+i*4:], math.Float32bits(mat[i]))
		}
	}
	return buf
}
