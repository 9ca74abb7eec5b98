package game_object

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/engine/loader"
)

// Shape identifies the geometry a GameObject contributes to the ray-traced scene.
type Shape int

const (
	// ShapeMesh is a triangle mesh instance of a loaded model (bottom-level structure built from triangles).
	ShapeMesh Shape = iota
	// ShapeSphere is a procedural sphere (bottom-level structure built from an AABB and intersected analytically).
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapeMesh:
		return "mesh"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

type gameObject struct {
	id      uint64
	enabled atomic.Bool
	name    string

	shape  Shape
	model  loader.ModelInfo
	radius float32

	position [3]float32
	scale    [3]float32
	rotation [3]float32 // radians, applied X then Y then Z
}

// GameObject is one instance in the scene: a mesh instance or a procedural sphere placed with a
// position, rotation and scale.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID (0 until the object is added to a scene)
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the display name of the object.
	//
	// Returns:
	//   - string: the name (the model name for mesh instances unless overridden)
	Name() string

	// Enabled returns whether this object takes part in the scene extent.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object takes part in the scene extent.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Shape returns the geometry kind.
	//
	// Returns:
	//   - Shape: ShapeMesh or ShapeSphere
	Shape() Shape

	// Model returns the model summary of a mesh instance (zero value for spheres).
	//
	// Returns:
	//   - loader.ModelInfo: the instanced model
	Model() loader.ModelInfo

	// Radius returns the object-space radius of a sphere (0 for meshes).
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// Position returns the world-space translation.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition sets the world-space translation.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// Rotation returns the Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the Euler rotation in radians, applied about X, then Y, then Z.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles
	SetRotation(rx, ry, rz float32)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: scale components
	SetScale(sx, sy, sz float32)

	// Transform returns the object-to-world matrix T * R * S.
	//
	// Returns:
	//   - mgl32.Mat4: the instance transform
	Transform() mgl32.Mat4

	// Bounds returns the world-space axis-aligned box of the object.
	//
	// Returns:
	//   - mgl32.Vec3: minimum corner
	//   - mgl32.Vec3: maximum corner
	Bounds() (mgl32.Vec3, mgl32.Vec3)
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled mesh object with unit scale at the origin.
// Use WithModel or WithSphere to give it geometry.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Name() string {
	if g.name == "" && g.shape == ShapeMesh {
		return g.model.Name
	}
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Shape() Shape {
	return g.shape
}

func (g *gameObject) Model() loader.ModelInfo {
	return g.model
}

func (g *gameObject) Radius() float32 {
	return g.radius
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Transform() mgl32.Mat4 {
	t := mgl32.Translate3D(g.position[0], g.position[1], g.position[2])
	r := mgl32.HomogRotate3DZ(g.rotation[2]).
		Mul4(mgl32.HomogRotate3DY(g.rotation[1])).
		Mul4(mgl32.HomogRotate3DX(g.rotation[0]))
	s := mgl32.Scale3D(g.scale[0], g.scale[1], g.scale[2])
	return t.Mul4(r).Mul4(s)
}

func (g *gameObject) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	switch g.shape {
	case ShapeSphere:
		r := mgl32.Vec3{g.radius, g.radius, g.radius}
		return loader.TransformBounds(r.Mul(-1), r, g.Transform())
	default:
		return loader.TransformBounds(g.model.Min, g.model.Max, g.Transform())
	}
}
