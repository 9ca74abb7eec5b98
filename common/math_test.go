package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSafeNormalize(t *testing.T) {
	fallback := mgl32.Vec3{0, 0, 1}
	inf := float32(math.Inf(1))
	tests := []struct {
		name string
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"axis", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0}},
		{"diagonal", mgl32.Vec3{3, 4, 0}, mgl32.Vec3{0.6, 0.8, 0}},
		{"zero", mgl32.Vec3{}, fallback},
		{"tiny", mgl32.Vec3{1e-9, 0, 0}, fallback},
		{"infinite", mgl32.Vec3{inf, 0, 0}, fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeNormalize(tt.in, fallback); !got.ApproxEqualThreshold(tt.want, 1e-6) {
				t.Errorf("SafeNormalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnyPerpendicular(t *testing.T) {
	for _, v := range []mgl32.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, -3},
		{1, 1, 1},
		{0.001, 5, -2},
	} {
		p := AnyPerpendicular(v)
		if math.Abs(float64(p.Len()-1)) > 1e-5 {
			t.Errorf("AnyPerpendicular(%v) = %v is not unit length", v, p)
		}
		if d := p.Dot(v.Normalize()); math.Abs(float64(d)) > 1e-5 {
			t.Errorf("AnyPerpendicular(%v) = %v is not perpendicular (dot %v)", v, p, d)
		}
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	tests := []struct {
		eye, center, up mgl32.Vec3
	}{
		{mgl32.Vec3{10, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-4, 2, 1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		got := LookAt(tt.eye, tt.center, tt.up)
		want := mgl32.LookAtV(tt.eye, tt.center, tt.up)
		if !got.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("LookAt(%v, %v, %v) = %v, want %v", tt.eye, tt.center, tt.up, got, want)
		}
	}
}

func TestLookAtDegenerateUp(t *testing.T) {
	m := LookAt(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	for i, v := range m {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("matrix[%d] = %v", i, v)
		}
	}
	// the eye still maps to the view-space origin
	if o := m.Mul4x1(mgl32.Vec4{0, 10, 0, 1}); !o.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Errorf("eye maps to %v, want the origin", o)
	}
}

func TestSmootherstep(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Smootherstep(tt.in); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Smootherstep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := Smootherstep(float32(i) / 100)
		if v < prev {
			t.Fatalf("Smootherstep decreases at %v", float32(i)/100)
		}
		prev = v
	}
}

func TestQuadraticBezier(t *testing.T) {
	p0 := mgl32.Vec3{0, 0, 0}
	p1 := mgl32.Vec3{1, 2, 0}
	p2 := mgl32.Vec3{2, 0, 0}

	if got := QuadraticBezier(0, p0, p1, p2); got != p0 {
		t.Errorf("t=0: %v, want %v", got, p0)
	}
	if got := QuadraticBezier(1, p0, p1, p2); got != p2 {
		t.Errorf("t=1: %v, want %v", got, p2)
	}
	if got := QuadraticBezier(0.5, p0, p1, p2); !got.ApproxEqualThreshold(mgl32.Vec3{1, 1, 0}, 1e-6) {
		t.Errorf("t=0.5: %v, want (1, 1, 0)", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.25); got != 3 {
		t.Errorf("Lerp = %v, want 3", got)
	}
	got := LerpVec3(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, -4, 8}, 0.5)
	if got != (mgl32.Vec3{2, -2, 4}) {
		t.Errorf("LerpVec3 = %v, want (2, -2, 4)", got)
	}
}

func TestIsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))
	if !IsFinite(mgl32.Vec3{1, 2, 3}) {
		t.Error("finite vector reported as non-finite")
	}
	if IsFinite(mgl32.Vec3{nan, 0, 0}) || IsFinite(mgl32.Vec3{0, 0, inf}) {
		t.Error("non-finite vector reported as finite")
	}
}

func TestPerspectiveZOInvalidAspect(t *testing.T) {
	want := PerspectiveZO(mgl32.DegToRad(60), 1, 0.1, 100)
	if got := PerspectiveZO(mgl32.DegToRad(60), 0, 0.1, 100); got != want {
		t.Errorf("aspect 0 = %v, want the aspect 1 matrix", got)
	}
}
