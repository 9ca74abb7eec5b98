package loader

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// gltfBoundsExtractorImpl is the implementation of the gltfBoundsExtractor interface.
type gltfBoundsExtractorImpl struct{}

// gltfBoundsExtractor walks the node hierarchy of a parsed document and measures the
// world-space extent of every mesh primitive it reaches.
type gltfBoundsExtractor interface {
	// Extract computes the model summary of the parsed document.
	//
	// Parameters:
	//   - parser: a parser holding a successfully parsed document
	//
	// Returns:
	//   - *ModelInfo: bounds and geometry counts (Name is left empty)
	//   - error: error if an accessor or node reference is invalid
	Extract(parser gltfParser) (*ModelInfo, error)
}

var _ gltfBoundsExtractor = &gltfBoundsExtractorImpl{}

func newGLTFBoundsExtractor() gltfBoundsExtractor {
	return &gltfBoundsExtractorImpl{}
}

func (e *gltfBoundsExtractorImpl) Extract(parser gltfParser) (*ModelInfo, error) {
	doc := parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	info := &ModelInfo{
		Min: mgl32.Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))},
		Max: mgl32.Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))},
	}

	visited := make(map[int]bool)
	var walk func(nodeIndex int, parent mgl32.Mat4) error
	walk = func(nodeIndex int, parent mgl32.Mat4) error {
		if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
			return fmt.Errorf("node index %d out of range", nodeIndex)
		}
		if visited[nodeIndex] {
			return fmt.Errorf("node %d appears twice in the hierarchy", nodeIndex)
		}
		visited[nodeIndex] = true

		node := &doc.Nodes[nodeIndex]
		world := parent.Mul4(localTransform(node))

		if node.Mesh != nil {
			if err := e.addMesh(parser, *node.Mesh, world, info); err != nil {
				return fmt.Errorf("node %d: %w", nodeIndex, err)
			}
		}
		for _, child := range node.Children {
			if err := walk(child, world); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range rootNodes(doc) {
		if err := walk(root, mgl32.Ident4()); err != nil {
			return nil, err
		}
	}

	if info.Primitives == 0 {
		return nil, fmt.Errorf("document contains no mesh geometry")
	}
	return info, nil
}

// addMesh grows info by every primitive of the mesh placed with the world transform.
func (e *gltfBoundsExtractorImpl) addMesh(parser gltfParser, meshIndex int, world mgl32.Mat4, info *ModelInfo) error {
	doc := parser.Document()
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return fmt.Errorf("mesh index %d out of range", meshIndex)
	}

	for i, prim := range doc.Meshes[meshIndex].Primitives {
		posIndex, ok := prim.Attributes["POSITION"]
		if !ok {
			continue
		}
		if posIndex < 0 || posIndex >= len(doc.Accessors) {
			return fmt.Errorf("mesh %d primitive %d: POSITION accessor %d out of range", meshIndex, i, posIndex)
		}
		acc := &doc.Accessors[posIndex]

		lo, hi, err := accessorBounds(parser, posIndex, acc)
		if err != nil {
			return fmt.Errorf("mesh %d primitive %d: %w", meshIndex, i, err)
		}
		wlo, whi := TransformBounds(lo, hi, world)
		info.Min = minVec(info.Min, wlo)
		info.Max = maxVec(info.Max, whi)

		info.Primitives++
		info.Vertices += acc.Count
		info.Triangles += triangleCount(doc, prim, acc.Count)
	}
	return nil
}

// accessorBounds returns the declared min/max of a POSITION accessor, falling back to
// scanning the vertex data when an exporter left them out.
func accessorBounds(parser gltfParser, index int, acc *gltfAccessor) (mgl32.Vec3, mgl32.Vec3, error) {
	if len(acc.Min) == 3 && len(acc.Max) == 3 {
		return mgl32.Vec3{acc.Min[0], acc.Min[1], acc.Min[2]}, mgl32.Vec3{acc.Max[0], acc.Max[1], acc.Max[2]}, nil
	}

	positions, err := parser.ReadVec3Accessor(index)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, err
	}
	if len(positions) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}, fmt.Errorf("accessor %d is empty", index)
	}
	lo, hi := mgl32.Vec3(positions[0]), mgl32.Vec3(positions[0])
	for _, p := range positions[1:] {
		lo = minVec(lo, p)
		hi = maxVec(hi, p)
	}
	return lo, hi, nil
}

func triangleCount(doc *gltfDocument, prim gltfPrimitive, vertexCount int) int {
	n := vertexCount
	if prim.Indices != nil && *prim.Indices >= 0 && *prim.Indices < len(doc.Accessors) {
		n = doc.Accessors[*prim.Indices].Count
	}
	mode := gltfPrimitiveModeTriangles
	if prim.Mode != nil {
		mode = *prim.Mode
	}
	switch mode {
	case gltfPrimitiveModeTriangles:
		return n / 3
	case gltfPrimitiveModeTriangleStrip, gltfPrimitiveModeTriangleFan:
		return max(n-2, 0)
	}
	return 0
}

// rootNodes returns the root nodes of the default scene, or of the first scene, or every node
// that is nobody's child when the document declares no scenes.
func rootNodes(doc *gltfDocument) []int {
	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			scene = *doc.Scene
		}
		return doc.Scenes[scene].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}

// localTransform returns the node matrix, or T * R * S when the node uses TRS properties.
func localTransform(node *gltfNode) mgl32.Mat4 {
	if node.Matrix != nil {
		return mgl32.Mat4(*node.Matrix)
	}

	m := mgl32.Ident4()
	if t := node.Translation; t != nil {
		m = mgl32.Translate3D(t[0], t[1], t[2])
	}
	if r := node.Rotation; r != nil {
		q := mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}.Normalize()
		m = m.Mul4(q.Mat4())
	}
	if s := node.Scale; s != nil {
		m = m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	}
	return m
}

// TransformBounds returns the axis-aligned box enclosing the transformed corners of [lo, hi].
//
// Parameters:
//   - lo, hi: box corners
//   - m: affine transform
//
// Returns:
//   - mgl32.Vec3: minimum corner of the transformed box
//   - mgl32.Vec3: maximum corner of the transformed box
func TransformBounds(lo, hi mgl32.Vec3, m mgl32.Mat4) (mgl32.Vec3, mgl32.Vec3) {
	var outLo, outHi mgl32.Vec3
	for i := range 8 {
		corner := lo
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				corner[axis] = hi[axis]
			}
		}
		p := m.Mul4x1(corner.Vec4(1)).Vec3()
		if i == 0 {
			outLo, outHi = p, p
			continue
		}
		outLo = minVec(outLo, p)
		outHi = maxVec(outHi, p)
	}
	return outLo, outHi
}

func minVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func maxVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
