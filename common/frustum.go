package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the distance of v from the plane, positive on the normal side.
func (p Plane) SignedDistance(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) + p.Distance
}

// Frustum represents the six planes of a view frustum.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustum extracts frustum planes from a projection * view matrix whose projection maps
// depth to [0, 1], as produced by PerspectiveZO.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustum(viewProj mgl32.Mat4) Frustum {
	var f Frustum

	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)

	f.Planes[FrustumLeft] = planeFromRow(r3.Add(r0))
	f.Planes[FrustumRight] = planeFromRow(r3.Sub(r0))
	f.Planes[FrustumBottom] = planeFromRow(r3.Add(r1))
	f.Planes[FrustumTop] = planeFromRow(r3.Sub(r1))
	// z_clip >= 0 for a [0, 1] depth range, not z_clip >= -w
	f.Planes[FrustumNear] = planeFromRow(r2)
	f.Planes[FrustumFar] = planeFromRow(r3.Sub(r2))

	return f
}

// planeFromRow builds a plane from a combined matrix row and normalizes it.
func planeFromRow(row mgl32.Vec4) Plane {
	p := Plane{Normal: row.Vec3(), Distance: row[3]}
	length := float32(math.Sqrt(float64(p.Normal.Dot(p.Normal))))
	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
	return p
}

// ContainsPoint reports whether v lies inside all six planes, allowing tolerance world units outside.
//
// Parameters:
//   - v: the point to test
//   - tolerance: how far outside a plane still counts as inside
//
// Returns:
//   - bool: true if the point is inside the frustum
func (f Frustum) ContainsPoint(v mgl32.Vec3, tolerance float32) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(v) < -tolerance {
			return false
		}
	}
	return true
}

// ContainsBox reports whether all eight corners of the box [lo, hi] are inside the frustum.
//
// Parameters:
//   - lo: minimum corner
//   - hi: maximum corner
//   - tolerance: how far outside a plane still counts as inside
//
// Returns:
//   - bool: true if the whole box is visible
func (f Frustum) ContainsBox(lo, hi mgl32.Vec3, tolerance float32) bool {
	for i := range 8 {
		corner := lo
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				corner[axis] = hi[axis]
			}
		}
		if !f.ContainsPoint(corner, tolerance) {
			return false
		}
	}
	return true
}
