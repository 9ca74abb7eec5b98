package cmd

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    mgl32.Vec3
		wantErr bool
	}{
		{name: "integers", in: "1,2,3", want: mgl32.Vec3{1, 2, 3}},
		{name: "spaces and negatives", in: " -1.5, 0 ,2.25", want: mgl32.Vec3{-1.5, 0, 2.25}},
		{name: "too few", in: "1,2", wantErr: true},
		{name: "too many", in: "1,2,3,4", wantErr: true},
		{name: "not a number", in: "1,x,3", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVec3(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseVec3(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVec3(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseVec3(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyViewFlags(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		mode     string
		profile  bool
		software bool
		check    func(t *testing.T, cfg *config.Config)
		wantErr  bool
	}{
		{
			name: "zero values keep the configuration",
			check: func(t *testing.T, cfg *config.Config) {
				def := config.Default()
				if cfg.Window != def.Window || cfg.Camera.Mode != def.Camera.Mode {
					t.Errorf("configuration changed: %+v", cfg.Window)
				}
			},
		},
		{
			name:   "size override",
			width:  800,
			height: 600,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("size = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
				}
			},
		},
		{
			name: "mode is normalized",
			mode: "Examine",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Camera.Mode != "examine" {
					t.Errorf("mode = %q, want examine", cfg.Camera.Mode)
				}
			},
		},
		{
			name:     "switches",
			profile:  true,
			software: true,
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Profiling.Enabled || !cfg.Renderer.Software {
					t.Errorf("profiling=%v software=%v, want both set", cfg.Profiling.Enabled, cfg.Renderer.Software)
				}
			},
		},
		{name: "unknown mode", mode: "orbit", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			err := applyViewFlags(cfg, tt.width, tt.height, tt.mode, tt.profile, tt.software)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyViewFlags: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestResolveFit(t *testing.T) {
	cfg := config.Default()

	req, err := resolveFit(cfg, nil, "", "", false, 0)
	if err != nil {
		t.Fatalf("resolveFit: %v", err)
	}
	if req.min != (mgl32.Vec3{-1, -1, -1}) || req.max != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("bounds = %v %v, want the configured scene", req.min, req.max)
	}
	wantAspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	if req.aspect != wantAspect {
		t.Errorf("aspect = %v, want %v", req.aspect, wantAspect)
	}

	req, err = resolveFit(cfg, nil, "0,0,0", "2,4,6", true, 2)
	if err != nil {
		t.Fatalf("resolveFit: %v", err)
	}
	if req.min != (mgl32.Vec3{0, 0, 0}) || req.max != (mgl32.Vec3{2, 4, 6}) || !req.tight || req.aspect != 2 {
		t.Errorf("unexpected request %+v", req)
	}

	if _, err := resolveFit(cfg, nil, "1,1,1", "0,0,0", false, 1); err == nil {
		t.Error("expected an error for an inverted box")
	}
	if _, err := resolveFit(cfg, nil, "1,1", "", false, 1); err == nil {
		t.Error("expected an error for a malformed corner")
	}
}

func TestResolveFitUsesSceneBounds(t *testing.T) {
	cfg := config.Default()
	sc := scene.NewScene("fit", scene.WithObjects(
		game_object.NewGameObject(game_object.WithSphere(2), game_object.WithPosition(0, 3, 0)),
	))

	req, err := resolveFit(cfg, sc, "", "", false, 1)
	if err != nil {
		t.Fatalf("resolveFit: %v", err)
	}
	if !req.min.ApproxEqual(mgl32.Vec3{-2, 1, -2}) || !req.max.ApproxEqual(mgl32.Vec3{2, 5, 2}) {
		t.Errorf("bounds = %v %v, want the sphere box", req.min, req.max)
	}

	req, err = resolveFit(cfg, sc, "", "9,9,9", false, 1)
	if err != nil {
		t.Fatalf("resolveFit: %v", err)
	}
	if !req.max.ApproxEqual(mgl32.Vec3{9, 9, 9}) {
		t.Errorf("max = %v, want the flag to override the scene", req.max)
	}
}

func TestAssetDir(t *testing.T) {
	if d := assetDir(""); d != "" {
		t.Errorf("assetDir(\"\") = %q", d)
	}
	if d := assetDir("scenes/demo.yaml"); d != "scenes" {
		t.Errorf("assetDir = %q, want scenes", d)
	}
}

func TestComputeFitFramesTheBox(t *testing.T) {
	cfg := config.Default()
	req := fitRequest{min: mgl32.Vec3{-1, -1, -1}, max: mgl32.Vec3{1, 1, 1}, aspect: 1}

	res, err := computeFit(cfg, req)
	if err != nil {
		t.Fatalf("computeFit: %v", err)
	}
	pose, view := res.pose, res.view
	if !res.visible {
		t.Error("fitted box should be inside the frustum")
	}
	if pose.Center.Len() > 1e-5 {
		t.Errorf("center = %v, want the box center", pose.Center)
	}

	// Bounding sphere radius sqrt(3) seen through half the vertical fov.
	halfFov := float64(mgl32.DegToRad(cfg.Camera.Fov)) / 2
	want := float32(math.Sqrt(3) / math.Sin(halfFov))
	if d := pose.Distance(); math.Abs(float64(d-want)) > 1e-3 {
		t.Errorf("distance = %v, want %v", d, want)
	}

	eye := view.Inv().Col(3).Vec3()
	if !eye.ApproxEqualThreshold(pose.Eye, 1e-3) {
		t.Errorf("view matrix eye = %v, want %v", eye, pose.Eye)
	}
}

func TestWriteFit(t *testing.T) {
	pose := camera.DefaultPose()
	req := fitRequest{min: mgl32.Vec3{-1, -1, -1}, max: mgl32.Vec3{1, 1, 1}, aspect: 1.5}

	var buf bytes.Buffer
	writeFit(&buf, req, fitResult{pose: pose, view: mgl32.Ident4(), visible: true})
	out := buf.String()

	for _, want := range []string{"eye", "center", "distance", "visible", "true", "view[3]", "1.5000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBindings(t *testing.T) {
	var buf bytes.Buffer
	writeBindings(&buf)
	out := buf.String()

	for _, b := range camera.Bindings() {
		if !strings.Contains(out, b.Gesture) {
			t.Errorf("mouse gesture %q missing from table", b.Gesture)
		}
	}
	if !strings.Contains(out, "keyboard") || !strings.Contains(out, "mouse") {
		t.Errorf("table does not label both input kinds:\n%s", out)
	}
}
