package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/pkg/math"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Pose is a placement transform. Rotation is Euler radians applied X then Y
// then Z; Scale is per-axis.
type Pose struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// UnitPose returns a pose at the origin with no rotation and unit scale.
func UnitPose() Pose {
	return Pose{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Object is a placed instance of a mesh. The mesh reference is shared and
// read-only; objects never mutate geometry.
type Object struct {
	Handle   uuid.UUID
	Name     string
	Mesh     *mesh.Mesh
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
	Color    Color
	Unlit    bool

	// DefaultPose is layout metadata attached at load time. Objects carrying
	// one snap back to it on a layout reset; objects without one keep their
	// current transform.
	DefaultPose *Pose

	// SourcePath is the file the mesh was loaded from, empty for embedded
	// meshes. Used to match live-reload events to objects.
	SourcePath string
}

// NewObject creates an object for a mesh with the given placement.
func NewObject(name string, m *mesh.Mesh, pose Pose, color Color) *Object {
	return &Object{
		Handle:   uuid.New(),
		Name:     name,
		Mesh:     m,
		Position: pose.Position,
		Rotation: pose.Rotation,
		Scale:    pose.Scale,
		Color:    color,
	}
}

// CurrentPose returns the object's transform as a pose value.
func (o *Object) CurrentPose() Pose {
	return Pose{Position: o.Position, Rotation: o.Rotation, Scale: o.Scale}
}

// ApplyPose overwrites the object's transform.
func (o *Object) ApplyPose(p Pose) {
	o.Position = p.Position
	o.Rotation = p.Rotation
	o.Scale = p.Scale
}
