package loader

import "io"

// loaderBackend defines the generic interface for reading model summaries from files or streams.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load reads the model at the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *ModelInfo: the model bounds and geometry counts
	//   - error: error if loading fails
	Load(path string) (*ModelInfo, error)

	// LoadReader reads a model from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data, false for text-based formats
	//
	// Returns:
	//   - *ModelInfo: the model bounds and geometry counts
	//   - error: error if loading fails
	LoadReader(r io.Reader, isGLB bool) (*ModelInfo, error)
}
