package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// hierarchyGLTF places a unit cube (declared min/max) under a translated parent and a scaled child.
const hierarchyGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"translation": [10, 0, 0], "children": [1]},
    {"scale": [2, 2, 2], "mesh": 0}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}],
  "accessors": [
    {"componentType": 5126, "count": 8, "type": "VEC3", "min": [-1, -1, -1], "max": [1, 1, 1]},
    {"componentType": 5123, "count": 36, "type": "SCALAR"}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func vec3Bytes(points ...[3]float32) []byte {
	var buf bytes.Buffer
	for _, p := range points {
		_ = binary.Write(&buf, binary.LittleEndian, p)
	}
	return buf.Bytes()
}

// triangleGLTF has a POSITION accessor without min/max, so bounds come from the buffer data.
func triangleGLTF() string {
	data := vec3Bytes([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 2, -3})
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data)
	return `{
  "asset": {"version": "2.0"},
  "nodes": [{"mesh": 0}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
  "bufferViews": [{"buffer": 0, "byteLength": 36}],
  "buffers": [{"uri": "` + uri + `", "byteLength": 36}]
}`
}

func glb(json string, bin []byte) []byte {
	for len(json)%4 != 0 {
		json += " "
	}
	var buf bytes.Buffer
	total := 12 + 8 + len(json)
	if bin != nil {
		total += 8 + len(bin)
	}
	_ = binary.Write(&buf, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(total)})
	_ = binary.Write(&buf, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(json)), ChunkType: gltfGLBChunkJSON})
	buf.WriteString(json)
	if bin != nil {
		_ = binary.Write(&buf, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(bin)), ChunkType: gltfGLBChunkBIN})
		buf.Write(bin)
	}
	return buf.Bytes()
}

func TestLoadHierarchy(t *testing.T) {
	path := writeFile(t, "cube.gltf", hierarchyGLTF)
	l := NewLoader(BackendTypeGLTF)

	info, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if info.Name != path {
		t.Errorf("name = %q, want %q", info.Name, path)
	}
	if !info.Min.ApproxEqual(mgl32.Vec3{8, -2, -2}) || !info.Max.ApproxEqual(mgl32.Vec3{12, 2, 2}) {
		t.Errorf("bounds = %v - %v, want (8,-2,-2) - (12,2,2)", info.Min, info.Max)
	}
	if info.Primitives != 1 || info.Vertices != 8 || info.Triangles != 12 {
		t.Errorf("counts = %d primitives, %d vertices, %d triangles", info.Primitives, info.Vertices, info.Triangles)
	}
	if c := info.Center(); !c.ApproxEqual(mgl32.Vec3{10, 0, 0}) {
		t.Errorf("center = %v, want (10, 0, 0)", c)
	}

	cached, ok := l.Get(path)
	if !ok || cached != info {
		t.Errorf("Get = %v, %v; want the loaded model", cached, ok)
	}
}

func TestLoadCachesByPath(t *testing.T) {
	path := writeFile(t, "cube.gltf", hierarchyGLTF)
	l := NewLoader(BackendTypeGLTF)

	if _, err := l.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(path); err != nil {
		t.Errorf("cached Load: %v", err)
	}

	l.Forget(path)
	if _, err := l.Load(path); err == nil {
		t.Error("Load after Forget should read the (deleted) file again")
	}
}

func TestLoadScansPositionsWithoutMinMax(t *testing.T) {
	path := writeFile(t, "triangle.gltf", triangleGLTF())

	info, err := NewLoader(BackendTypeGLTF).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if info.Min != (mgl32.Vec3{0, 0, -3}) || info.Max != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("bounds = %v - %v", info.Min, info.Max)
	}
	if info.Triangles != 1 {
		t.Errorf("triangles = %d, want 1", info.Triangles)
	}
}

func TestLoadRotatedNodeMatrix(t *testing.T) {
	// 90 degrees about +Y maps +X to -Z
	doc := `{
  "asset": {"version": "2.0"},
  "nodes": [{"mesh": 0, "rotation": [0, 0.7071068, 0, 0.7071068]}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [4, 1, 1]}]
}`
	info, err := NewLoader(BackendTypeGLTF).LoadReader("rotated", strings.NewReader(doc), false)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if !info.Min.ApproxEqualThreshold(mgl32.Vec3{0, 0, -4}, 1e-5) || !info.Max.ApproxEqualThreshold(mgl32.Vec3{1, 1, 0}, 1e-5) {
		t.Errorf("bounds = %v - %v, want (0,0,-4) - (1,1,0)", info.Min, info.Max)
	}
}

func TestLoadReaderGLB(t *testing.T) {
	bin := vec3Bytes([3]float32{-1, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 5, 0})
	doc := `{"asset":{"version":"2.0"},"nodes":[{"mesh":0}],` +
		`"meshes":[{"primitives":[{"attributes":{"POSITION":0}}]}],` +
		`"accessors":[{"bufferView":0,"componentType":5126,"count":3,"type":"VEC3"}],` +
		`"bufferViews":[{"buffer":0,"byteLength":36}],"buffers":[{"byteLength":36}]}`

	l := NewLoader(BackendTypeGLTF)
	info, err := l.LoadReader("tri.glb", bytes.NewReader(glb(doc, bin)), true)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if info.Min != (mgl32.Vec3{-1, 0, 0}) || info.Max != (mgl32.Vec3{1, 5, 0}) {
		t.Errorf("bounds = %v - %v", info.Min, info.Max)
	}
	if _, ok := l.Models()["tri.glb"]; !ok {
		t.Error("model not cached under its name")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		data  string
		isGLB bool
	}{
		{name: "unsupported extension", file: "model.obj", data: hierarchyGLTF},
		{name: "bad json", file: "bad.gltf", data: "{"},
		{name: "wrong version", file: "old.gltf", data: `{"asset":{"version":"1.0"}}`},
		{name: "no geometry", file: "empty.gltf", data: `{"asset":{"version":"2.0"},"nodes":[{}]}`},
		{name: "bad glb magic", file: "bad.glb", data: "xxxxxxxxxxxxxxxx"},
		{name: "mesh out of range", file: "mesh.gltf", data: `{"asset":{"version":"2.0"},"nodes":[{"mesh":3}]}`},
		{name: "missing buffer file", file: "buf.gltf", data: `{"asset":{"version":"2.0"},"buffers":[{"uri":"nope.bin","byteLength":4}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.data)
			if _, err := NewLoader(BackendTypeGLTF).Load(path); err == nil {
				t.Errorf("Load(%s) succeeded, want error", tt.file)
			}
		})
	}
}

func TestWithModelPrepopulatesCache(t *testing.T) {
	info := ModelInfo{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}, Primitives: 1}
	l := NewLoader(BackendTypeGLTF, WithModel("builtin.glb", info))

	got, err := l.Load("builtin.glb")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "builtin.glb" || got.Max != info.Max {
		t.Errorf("Load = %+v", got)
	}
}

func TestTransformBounds(t *testing.T) {
	lo, hi := TransformBounds(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, mgl32.HomogRotate3DY(math.Pi/4))
	r := float32(math.Sqrt2)
	if !lo.ApproxEqualThreshold(mgl32.Vec3{-r, -1, -r}, 1e-5) || !hi.ApproxEqualThreshold(mgl32.Vec3{r, 1, r}, 1e-5) {
		t.Errorf("bounds = %v - %v", lo, hi)
	}
}
