// Package mesh provides the normalized triangle mesh shared by scene objects.
package mesh

import (
	"github.com/Faultbox/meshview/pkg/formats"
	"github.com/Faultbox/meshview/pkg/math"
)

// NormalizedExtent is the largest dimension of a mesh after normalization.
// Keeping content below one unit leaves headroom inside the perspective
// frustum without per-frame re-fitting.
const NormalizedExtent = 0.9

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Mesh is immutable shared geometry. Objects referencing a mesh never mutate
// it; edits are expressed by swapping in a freshly built mesh.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles [][3]int

	// Bounds is the post-normalization box, set by Normalize.
	// Used only for overlay rendering.
	Bounds *Bounds
}

// FromOBJ builds a mesh from parsed geometry. Triangle indices are assumed
// valid, which ParseOBJ guarantees.
func FromOBJ(o *formats.OBJ) *Mesh {
	return &Mesh{
		Vertices:  o.Vertices,
		Triangles: o.Triangles,
	}
}

// ToOBJ converts the mesh back to its exportable form.
func (m *Mesh) ToOBJ() *formats.OBJ {
	return &formats.OBJ{
		Vertices:  m.Vertices,
		Triangles: m.Triangles,
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Normalize returns a copy of the mesh translated so its bounding box is
// centered at the origin and uniformly scaled so its largest dimension is
// NormalizedExtent, with the resulting box recorded. A mesh with no vertices
// is returned unchanged. The input is never mutated.
func Normalize(m *Mesh) *Mesh {
	if len(m.Vertices) == 0 {
		return m
	}

	min := m.Vertices[0]
	max := m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}

	center := min.Add(max).Scale(0.5)
	size := max.Sub(min)

	largest := size.X
	if size.Y > largest {
		largest = size.Y
	}
	if size.Z > largest {
		largest = size.Z
	}

	scale := float32(1)
	if largest > 0 {
		scale = NormalizedExtent / largest
	}

	out := &Mesh{
		Vertices:  make([]math.Vec3, len(m.Vertices)),
		Triangles: m.Triangles,
		Bounds: &Bounds{
			Min: min.Sub(center).Scale(scale),
			Max: max.Sub(center).Scale(scale),
		},
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = v.Sub(center).Scale(scale)
	}

	return out
}
