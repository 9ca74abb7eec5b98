package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the smallest length treated as non-zero by the vector helpers in this package.
const Epsilon float32 = 1e-6

// SafeNormalize returns v scaled to unit length, or fallback when v is too short to normalize.
//
// Parameters:
//   - v: vector to normalize
//   - fallback: vector returned when v has (near) zero length
//
// Returns:
//   - mgl32.Vec3: the normalized vector or fallback
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return fallback
	}
	return v.Mul(1 / l)
}

// AnyPerpendicular returns a unit vector perpendicular to v.
// The world axis least aligned with v is used to build it, so the result is stable for any non-zero v.
//
// Parameters:
//   - v: reference vector (need not be normalized)
//
// Returns:
//   - mgl32.Vec3: a unit vector orthogonal to v
func AnyPerpendicular(v mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	ax, ay, az := abs32(v[0]), abs32(v[1]), abs32(v[2])
	if ay <= ax && ay <= az {
		axis = mgl32.Vec3{0, 1, 0}
	} else if az <= ax && az <= ay {
		axis = mgl32.Vec3{0, 0, 1}
	}
	return SafeNormalize(v.Cross(axis), mgl32.Vec3{1, 0, 0})
}

// LookAt creates a right-handed view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space (column-major).
// Coincident eye/center or an up vector parallel to the view direction never yield NaN:
// the forward axis falls back to -Z and the up axis to any perpendicular of the forward axis.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (need not be normalized)
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	// z axis points from the center towards the eye
	z := SafeNormalize(eye.Sub(center), mgl32.Vec3{0, 0, 1})
	x := up.Cross(z)
	if x.Len() < Epsilon {
		x = AnyPerpendicular(z)
	} else {
		x = x.Normalize()
	}
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveZO creates a right-handed perspective projection matrix with a [0, 1] clip-space depth
// range, as used by WebGPU and Vulkan.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func PerspectiveZO(fovY, aspect, near, far float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates each component of a and b.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Smootherstep is Perlin's quintic easing 6t^5 - 15t^4 + 10t^3.
// It has zero first and second derivatives at both ends. Input is clamped to [0, 1].
func Smootherstep(t float32) float32 {
	t = mgl32.Clamp(t, 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// QuadraticBezier evaluates the quadratic Bezier curve through control points p0, p1, p2 at t.
//
// Parameters:
//   - t: curve parameter in [0, 1]
//   - p0, p1, p2: control points
//
// Returns:
//   - mgl32.Vec3: the point on the curve
func QuadraticBezier(t float32, p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	u := 1 - t
	return p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
