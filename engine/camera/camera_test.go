package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	if c.Aspect() != 1 || c.Near() != 0.1 || c.Far() != 1000 {
		t.Errorf("aspect/near/far = %v/%v/%v, want 1/0.1/1000", c.Aspect(), c.Near(), c.Far())
	}
	if c.Fov() != DefaultPose().Fov {
		t.Errorf("fov = %v, want %v", c.Fov(), DefaultPose().Fov)
	}
	if c.ViewMatrix() != mgl32.Ident4() {
		t.Errorf("view = %v, want identity without a manipulator", c.ViewMatrix())
	}
	if c.Manipulator() != nil {
		t.Error("expected no manipulator")
	}
}

func TestCameraMirrorsManipulator(t *testing.T) {
	m := newTestManipulator(&fakeClock{})
	c := NewCamera(WithManipulator(m), WithAspect(16.0/9.0))

	if c.ViewMatrix() != m.Matrix() {
		t.Errorf("view = %v, want the manipulator matrix", c.ViewMatrix())
	}

	m.SetLookat(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, true)
	m.SetFov(30)
	if c.Fov() == 30 {
		t.Error("camera picked up the new fov before Update")
	}

	c.Update()
	if c.ViewMatrix() != m.Matrix() {
		t.Errorf("view = %v, want %v", c.ViewMatrix(), m.Matrix())
	}
	if c.Fov() != 30 {
		t.Errorf("fov = %v, want 30", c.Fov())
	}

	want := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	if !c.ViewProjectionMatrix().ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("view-projection = %v, want %v", c.ViewProjectionMatrix(), want)
	}
}

func TestCameraProjectionDepthRange(t *testing.T) {
	c := NewCamera(WithNear(0.5), WithFar(50))
	proj := c.ProjectionMatrix()

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -0.5, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -50, 1})
	if z := near[2] / near[3]; math.Abs(float64(z)) > 1e-5 {
		t.Errorf("near plane depth = %v, want 0", z)
	}
	if z := far[2] / far[3]; math.Abs(float64(z-1)) > 1e-5 {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}

func TestCameraMatricesInverses(t *testing.T) {
	m := newTestManipulator(&fakeClock{})
	c := NewCamera(WithManipulator(m), WithAspect(1.5))
	g := c.Matrices()

	view := mgl32.Mat4(g.View)
	viewInv := mgl32.Mat4(g.ViewInverse)
	if !view.Mul4(viewInv).ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Errorf("view * viewInverse = %v, want identity", view.Mul4(viewInv))
	}
	proj := mgl32.Mat4(g.Proj)
	projInv := mgl32.Mat4(g.ProjInverse)
	if !proj.Mul4(projInv).ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Errorf("proj * projInverse = %v, want identity", proj.Mul4(projInv))
	}

	// the inverse view matrix carries the eye position
	eye := viewInv.Col(3).Vec3()
	if !eye.ApproxEqualThreshold(m.Camera().Eye, 1e-3) {
		t.Errorf("eye = %v, want %v", eye, m.Camera().Eye)
	}
}

func TestCameraSetters(t *testing.T) {
	c := NewCamera()
	before := c.ProjectionMatrix()

	c.SetAspect(2)
	if c.Aspect() != 2 || c.ProjectionMatrix() == before {
		t.Errorf("SetAspect did not update the projection")
	}
	c.SetNear(1)
	c.SetFar(10)
	if c.Near() != 1 || c.Far() != 10 {
		t.Errorf("near/far = %v/%v, want 1/10", c.Near(), c.Far())
	}

	m := newTestManipulator(&fakeClock{})
	c.SetManipulator(m)
	if c.Manipulator() != m || c.ViewMatrix() != m.Matrix() {
		t.Error("SetManipulator did not adopt the manipulator")
	}
}

func TestGPUCameraMatricesLayout(t *testing.T) {
	var g GPUCameraMatrices
	if g.Size() != 256 {
		t.Fatalf("Size() = %d, want 256", g.Size())
	}

	g.View[0] = 1.5
	g.Proj[5] = -2
	g.ViewInverse[15] = 3
	g.ProjInverse[14] = 0.25
	buf := g.Marshal()
	if len(buf) != 256 {
		t.Fatalf("len(Marshal()) = %d, want 256", len(buf))
	}

	tests := []struct {
		offset int
		want   float32
	}{
		{0, 1.5},
		{64 + 5*4, -2},
		{128 + 15*4, 3},
		{192 + 14*4, 0.25},
		{4, 0},
	}
	for _, tt := range tests {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[tt.offset:]))
		if got != tt.want {
			t.Errorf("float at offset %d = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestGPUCameraMatricesSource(t *testing.T) {
	for _, field := range []string{"struct CameraMatrices", "view", "proj", "viewInverse", "projInverse"} {
		if !strings.Contains(GPUCameraMatricesSource, field) {
			t.Errorf("WGSL source is missing %q", field)
		}
	}
}

func TestFrameAccumulator(t *testing.T) {
	a := NewFrameAccumulator()
	view := mgl32.Ident4()

	steps := []struct {
		name string
		view mgl32.Mat4
		fov  float32
		want int
	}{
		{"first frame", view, 60, 0},
		{"unchanged", view, 60, 1},
		{"still unchanged", view, 60, 2},
		{"view changed", mgl32.Translate3D(0, 0, -1), 60, 0},
		{"accumulating again", mgl32.Translate3D(0, 0, -1), 60, 1},
		{"fov changed", mgl32.Translate3D(0, 0, -1), 45, 0},
	}
	for _, s := range steps {
		if got := a.Update(s.view, s.fov); got != s.want {
			t.Errorf("%s: Update = %d, want %d", s.name, got, s.want)
		}
		if a.Frame() != s.want {
			t.Errorf("%s: Frame = %d, want %d", s.name, a.Frame(), s.want)
		}
	}

	a.Reset()
	if a.Frame() != 0 {
		t.Errorf("Frame after Reset = %d, want 0", a.Frame())
	}
	if got := a.Update(mgl32.Translate3D(0, 0, -1), 45); got != 0 {
		t.Errorf("Update after Reset = %d, want 0", got)
	}
}

func TestFrameAccumulatorFollowsManipulator(t *testing.T) {
	clock := &fakeClock{}
	m := newTestManipulator(clock)
	a := NewFrameAccumulator()

	a.Update(m.Matrix(), m.Fov())
	if got := a.Update(m.Matrix(), m.Fov()); got != 1 {
		t.Fatalf("Update = %d, want 1", got)
	}

	m.SetMousePosition(640, 360)
	m.MouseMove(650, 360, Inputs{LMB: true})
	if got := a.Update(m.Matrix(), m.Fov()); got != 0 {
		t.Errorf("Update after orbit = %d, want 0", got)
	}

	m.Wheel(3, Inputs{Shift: true})
	if got := a.Update(m.Matrix(), m.Fov()); got != 0 {
		t.Errorf("Update after zoom = %d, want 0", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"examine", Examine, false},
		{"FLY", Fly, false},
		{" Walk ", Walk, false},
		{"", Examine, false},
		{"orbit", Examine, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, mode := range []Mode{Examine, Fly, Walk} {
		if back, err := ParseMode(mode.String()); err != nil || back != mode {
			t.Errorf("ParseMode(%q) = %v, %v", mode.String(), back, err)
		}
	}
}

func TestCameraFrustumFollowsManipulator(t *testing.T) {
	m := NewCameraManipulator(
		WithMode(Examine),
		WithWindowSize(800, 800),
		WithLookat(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
	)
	cam := NewCamera(WithManipulator(m), WithAspect(1))

	if !cam.Frustum().ContainsPoint(mgl32.Vec3{}, 0) {
		t.Fatal("center of interest should be visible")
	}
	if cam.Frustum().ContainsPoint(mgl32.Vec3{0, 0, 6}, 0) {
		t.Fatal("point behind the eye should not be visible")
	}

	m.SetLookat(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, -10}, mgl32.Vec3{0, 1, 0}, true)
	cam.Update()
	if cam.Frustum().ContainsPoint(mgl32.Vec3{}, 0) {
		t.Fatal("origin should be behind the camera after turning around")
	}
}
