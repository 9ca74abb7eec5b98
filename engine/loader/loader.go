package loader

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// ModelInfo summarizes a model file: its extent in model space (all node transforms applied)
// and the amount of geometry the ray tracer will have to build acceleration structures for.
type ModelInfo struct {
	Name       string
	Min        mgl32.Vec3
	Max        mgl32.Vec3
	Primitives int
	Vertices   int
	Triangles  int
}

// Center returns the middle of the bounding box.
func (m ModelInfo) Center() mgl32.Vec3 {
	return m.Min.Add(m.Max).Mul(0.5)
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	modelCache map[string]ModelInfo

	backend loaderBackend
}

// Loader defines the public-facing interface for reading and caching model summaries.
// It abstracts the file format (glTF, GLB, etc.) behind a generic backend and
// manages a cache of previously loaded models.
type Loader interface {
	// Load reads a model file and caches the result.
	// If the model is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension (.gltf/.glb → glTF backend).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - ModelInfo: the model bounds and geometry counts
	//   - error: error if loading fails
	Load(path string) (ModelInfo, error)

	// LoadReader reads a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded model
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - ModelInfo: the model bounds and geometry counts
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader, isGLB bool) (ModelInfo, error)

	// Get retrieves a cached model by name.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - ModelInfo: the cached model
	//   - bool: false if nothing is cached under name
	Get(name string) (ModelInfo, bool)

	// Models returns a copy of the model cache.
	//
	// Returns:
	//   - map[string]ModelInfo: all cached models keyed by name
	Models() map[string]ModelInfo

	// Forget drops a model from the cache so the next Load reads the file again.
	//
	// Parameters:
	//   - name: the cache key to drop
	Forget(name string)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		modelCache: make(map[string]ModelInfo),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Load(path string) (ModelInfo, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return ModelInfo{}, err
	}

	info, err := backend.Load(path)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("loader: load %s: %w", path, err)
	}
	info.Name = path

	l.mu.Lock()
	l.modelCache[path] = *info
	l.mu.Unlock()

	return *info, nil
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (ModelInfo, error) {
	if l.backend == nil {
		return ModelInfo{}, fmt.Errorf("loader: no backend configured")
	}

	info, err := l.backend.LoadReader(r, isGLB)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("loader: load %s: %w", name, err)
	}
	info.Name = name

	l.mu.Lock()
	l.modelCache[name] = *info
	l.mu.Unlock()

	return *info, nil
}

func (l *loader) Get(name string) (ModelInfo, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	info, ok := l.modelCache[name]
	return info, ok
}

func (l *loader) Models() map[string]ModelInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.modelCache)
}

func (l *loader) Forget(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.modelCache, name)
}

// resolveBackend returns the backend for the file extension.
// Currently only glTF/GLB is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		if l.backend == nil {
			return nil, fmt.Errorf("loader: no backend configured")
		}
		return l.backend, nil
	default:
		return nil, fmt.Errorf("loader: unsupported model format %q", ext)
	}
}
