package scene

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/engine/game_object"
)

// Stats counts the geometry of the enabled objects in a scene.
type Stats struct {
	Meshes    int
	Spheres   int
	Triangles int
	Vertices  int
}

// Scene holds the instances the ray tracer renders: mesh instances of loaded models and
// procedural spheres. Its extent drives camera fitting.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Count returns the number of objects in the scene, enabled or not.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Add places an object in the scene. Objects without an ID are assigned the next free one.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if absent
	Get(id uint64) game_object.GameObject

	// Remove drops the object with the given ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear drops every object.
	Clear()

	// Objects returns the objects ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: a snapshot of the scene contents
	Objects() []game_object.GameObject

	// Bounds returns the world-space box enclosing every enabled object.
	//
	// Returns:
	//   - mgl32.Vec3: minimum corner
	//   - mgl32.Vec3: maximum corner
	//   - bool: false when no enabled object exists
	Bounds() (mgl32.Vec3, mgl32.Vec3, bool)

	// Stats counts the geometry of the enabled objects.
	//
	// Returns:
	//   - Stats: mesh, sphere, triangle and vertex counts
	Stats() Stats
}

type scene struct {
	mu *sync.RWMutex

	name string

	registry map[uint64]game_object.GameObject
	nextID   uint64
}

var _ Scene = &scene{}

// NewScene creates an empty Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.register(obj)
	return obj.ID()
}

// register assigns an ID when needed and stores the object. Caller must hold s.mu write lock.
func (s *scene) register(obj game_object.GameObject) {
	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objs := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		objs = append(objs, obj)
	}
	slices.SortFunc(objs, func(a, b game_object.GameObject) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})
	return objs
}

func (s *scene) Bounds() (mgl32.Vec3, mgl32.Vec3, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lo, hi mgl32.Vec3
	found := false
	for _, obj := range s.registry {
		if !obj.Enabled() {
			continue
		}
		olo, ohi := obj.Bounds()
		if !found {
			lo, hi, found = olo, ohi, true
			continue
		}
		for i := range 3 {
			lo[i] = min(lo[i], olo[i])
			hi[i] = max(hi[i], ohi[i])
		}
	}
	return lo, hi, found
}

func (s *scene) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	for _, obj := range s.registry {
		if !obj.Enabled() {
			continue
		}
		switch obj.Shape() {
		case game_object.ShapeSphere:
			st.Spheres++
		default:
			st.Meshes++
			st.Triangles += obj.Model().Triangles
			st.Vertices += obj.Model().Vertices
		}
	}
	return st
}
