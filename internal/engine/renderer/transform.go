package renderer

import (
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/pkg/math"
)

// NearPlane is the per-vertex projection guard: vertices at or behind this
// view-space depth cannot be projected.
const NearPlane = 0.15

// primitiveNearEpsilon is the earlier, primitive-level near guard applied to
// whole triangles before culling and shading. It is deliberately a separate
// constant from NearPlane: one decides which triangles are discarded early,
// the other which vertices are unprojectable.
const primitiveNearEpsilon = 1e-6

// ApplyModel transforms a mesh-local point into world space. The order is
// fixed: scale, rotate about X, then Y, then Z, then translate. Rotation is
// not commutative, so this order must not change.
func ApplyModel(p math.Vec3, obj *scene.Object) math.Vec3 {
	return p.Mul(obj.Scale).
		RotateX(obj.Rotation.X).
		RotateY(obj.Rotation.Y).
		RotateZ(obj.Rotation.Z).
		Add(obj.Position)
}

// Project perspective-divides a view-space point into normalized device
// coordinates. It reports false when the point sits at or behind NearPlane,
// where the division would blow up. Dividing x by the aspect ratio keeps
// wide viewports from stretching content horizontally.
func Project(p math.Vec3, aspect float32) (math.Vec2, bool) {
	if p.Z <= NearPlane {
		return math.Vec2{}, false
	}
	return math.Vec2{
		X: p.X / p.Z / aspect,
		Y: p.Y / p.Z,
	}, true
}

// ToScreen maps NDC to pixel coordinates: x in [-1,1] to [0,width] and
// y in [-1,1] to [height,0], flipping vertically since NDC y points up.
func ToScreen(ndc math.Vec2, width, height int) math.Vec2 {
	return math.Vec2{
		X: (ndc.X + 1) * 0.5 * float32(width),
		Y: (1 - ndc.Y) * 0.5 * float32(height),
	}
}
