package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rt/engine/loader"
)

func cube(name string, triangles int) loader.ModelInfo {
	return loader.ModelInfo{
		Name:      name,
		Min:       mgl32.Vec3{-1, -1, -1},
		Max:       mgl32.Vec3{1, 1, 1},
		Vertices:  24,
		Triangles: triangles,
	}
}

func TestAddAssignsIDs(t *testing.T) {
	s := NewScene("test")

	a := s.Add(game_object.NewGameObject(game_object.WithSphere(1)))
	b := s.Add(game_object.NewGameObject(game_object.WithSphere(1)))
	if a != 1 || b != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", a, b)
	}

	explicit := s.Add(game_object.NewGameObject(game_object.WithID(10), game_object.WithSphere(1)))
	if explicit != 10 {
		t.Errorf("explicit id = %d, want 10", explicit)
	}
	if next := s.Add(game_object.NewGameObject()); next != 11 {
		t.Errorf("id after explicit = %d, want 11", next)
	}
	if s.Count() != 4 {
		t.Errorf("count = %d, want 4", s.Count())
	}
}

func TestGetRemoveClear(t *testing.T) {
	obj := game_object.NewGameObject(game_object.WithSphere(1))
	s := NewScene("test", WithObjects(obj))

	if got := s.Get(obj.ID()); got != obj {
		t.Fatalf("Get(%d) = %v", obj.ID(), got)
	}
	s.Remove(obj.ID())
	s.Remove(999)
	if s.Get(obj.ID()) != nil || s.Count() != 0 {
		t.Error("object still present after Remove")
	}

	s.Add(game_object.NewGameObject())
	s.Clear()
	if s.Count() != 0 {
		t.Errorf("count after Clear = %d", s.Count())
	}
}

func TestObjectsOrderedByID(t *testing.T) {
	s := NewScene("test")
	for _, id := range []uint64{5, 2, 9, 1} {
		s.Add(game_object.NewGameObject(game_object.WithID(id)))
	}

	var ids []uint64
	for _, obj := range s.Objects() {
		ids = append(ids, obj.ID())
	}
	want := []uint64{1, 2, 5, 9}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		objects []game_object.GameObject
		ok      bool
		lo, hi  mgl32.Vec3
	}{
		{name: "empty", ok: false},
		{
			name: "only disabled",
			objects: []game_object.GameObject{
				game_object.NewGameObject(game_object.WithSphere(1), game_object.WithEnabled(false)),
			},
			ok: false,
		},
		{
			name: "sphere and mesh",
			objects: []game_object.GameObject{
				game_object.NewGameObject(game_object.WithSphere(1), game_object.WithPosition(0, 0, 0)),
				game_object.NewGameObject(game_object.WithModel(cube("box", 12)), game_object.WithPosition(4, 0, 0)),
			},
			ok: true,
			lo: mgl32.Vec3{-1, -1, -1},
			hi: mgl32.Vec3{5, 1, 1},
		},
		{
			name: "disabled object ignored",
			objects: []game_object.GameObject{
				game_object.NewGameObject(game_object.WithSphere(1)),
				game_object.NewGameObject(game_object.WithSphere(1), game_object.WithPosition(100, 0, 0), game_object.WithEnabled(false)),
			},
			ok: true,
			lo: mgl32.Vec3{-1, -1, -1},
			hi: mgl32.Vec3{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene("bounds", WithObjects(tt.objects...))
			lo, hi, ok := s.Bounds()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !lo.ApproxEqualThreshold(tt.lo, 1e-5) || !hi.ApproxEqualThreshold(tt.hi, 1e-5) {
				t.Errorf("bounds = %v - %v, want %v - %v", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestStats(t *testing.T) {
	s := NewScene("stats", WithObjects(
		game_object.NewGameObject(game_object.WithModel(cube("a", 12))),
		game_object.NewGameObject(game_object.WithModel(cube("b", 100))),
		game_object.NewGameObject(game_object.WithSphere(2)),
		game_object.NewGameObject(game_object.WithSphere(2), game_object.WithEnabled(false)),
	))

	st := s.Stats()
	if st.Meshes != 2 || st.Spheres != 1 || st.Triangles != 112 || st.Vertices != 48 {
		t.Errorf("stats = %+v", st)
	}
}

func TestSetName(t *testing.T) {
	s := NewScene("a")
	s.SetName("b")
	if s.Name() != "b" {
		t.Errorf("name = %q, want b", s.Name())
	}
}
