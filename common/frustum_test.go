package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testFrustum() Frustum {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := PerspectiveZO(mgl32.DegToRad(90), 1, 1, 100)
	return ExtractFrustum(proj.Mul4(view))
}

func TestExtractFrustumPlanes(t *testing.T) {
	f := testFrustum()

	// camera at z=10 looking down -z: near plane at z=9, far plane at z=-90
	if d := f.Planes[FrustumNear].SignedDistance(mgl32.Vec3{0, 0, 9}); d > 1e-4 || d < -1e-4 {
		t.Errorf("near plane distance at z=9 = %v, want 0", d)
	}
	if d := f.Planes[FrustumFar].SignedDistance(mgl32.Vec3{0, 0, -90}); d > 1e-3 || d < -1e-3 {
		t.Errorf("far plane distance at z=-90 = %v, want 0", d)
	}
	for i, p := range f.Planes {
		if l := p.Normal.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name string
		p    mgl32.Vec3
		want bool
	}{
		{name: "origin", p: mgl32.Vec3{}, want: true},
		{name: "behind camera", p: mgl32.Vec3{0, 0, 11}, want: false},
		{name: "between eye and near plane", p: mgl32.Vec3{0, 0, 9.5}, want: false},
		{name: "beyond far plane", p: mgl32.Vec3{0, 0, -100}, want: false},
		{name: "inside the 90 degree cone", p: mgl32.Vec3{9, 0, 0}, want: true},
		{name: "outside to the right", p: mgl32.Vec3{11, 0, 0}, want: false},
		{name: "outside above", p: mgl32.Vec3{0, 11, 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.p, 0); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestFrustumContainsBox(t *testing.T) {
	f := testFrustum()

	if !f.ContainsBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, 0) {
		t.Error("unit box at the origin should be visible")
	}
	if f.ContainsBox(mgl32.Vec3{-20, -1, -1}, mgl32.Vec3{1, 1, 1}, 0) {
		t.Error("box reaching past the left plane should not be fully visible")
	}
	// x=10 at z=0 lies exactly on the right plane
	if !f.ContainsBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, 1e-3) {
		t.Error("box touching a plane should be visible within tolerance")
	}
}
