// Package picking provides ray casting for click selection.
package picking

import (
	gomath "math"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/pkg/math"
)

// Ray is a half-line in world space with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// FromCorners builds the AABB enclosing a set of points. Rotated object
// bounds are fed through here corner by corner, so the result is
// conservative rather than tight.
func FromCorners(corners []math.Vec3) AABB {
	if len(corners) == 0 {
		return AABB{}
	}
	box := AABB{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		box.Min = box.Min.Min(c)
		box.Max = box.Max.Max(c)
	}
	return box
}

// ScreenToRay converts a pixel coordinate into a world-space ray from the
// camera. The mapping inverts the projection: pixels to NDC, NDC to a
// view-space direction at unit depth, then the camera rotation back to world.
func ScreenToRay(px, py, width, height int, cam *camera.Camera) Ray {
	ndcX := 2*float32(px)/float32(width) - 1
	ndcY := 1 - 2*float32(py)/float32(height)
	aspect := float32(width) / float32(height)

	dir := math.Vec3{X: ndcX * aspect, Y: ndcY, Z: 1}.
		RotateX(cam.Pitch).
		RotateY(cam.Yaw).
		Normalize()

	return Ray{Origin: cam.Position, Direction: dir}
}

// IntersectAABB tests the ray against a box with the slab method. It returns
// the entry distance and whether the ray hits; a ray starting inside the box
// reports the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	max := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (min[axis] - origin[axis]) / dir[axis]
			t2 := (max[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < min[axis] || origin[axis] > max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
