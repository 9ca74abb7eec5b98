package loader

import "io"

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct {
	extractor gltfBoundsExtractor
}

// gltfLoaderBackend is a loaderBackend implementation for glTF/GLB files.
// Every load uses a fresh parser; the extractor is stateless.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF loader backend.
//
// Returns:
//   - gltfLoaderBackend: the loader backend for glTF/GLB files
func newGLTFLoaderBackend() gltfLoaderBackend {
	return &gltfLoaderBackendImpl{
		extractor: newGLTFBoundsExtractor(),
	}
}

func (b *gltfLoaderBackendImpl) Load(path string) (*ModelInfo, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, err
	}
	return b.extractor.Extract(parser)
}

func (b *gltfLoaderBackendImpl) LoadReader(r io.Reader, isGLB bool) (*ModelInfo, error) {
	parser := newGLTFParser()
	if err := parser.ParseReader(r, isGLB); err != nil {
		return nil, err
	}
	return b.extractor.Extract(parser)
}
