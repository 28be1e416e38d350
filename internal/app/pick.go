package app

import (
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/picking"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/pkg/math"
)

// pickAt selects the closest object whose world-space bounds the click ray
// hits. A miss keeps the current selection.
func (a *App) pickAt(px, py int) {
	width, height := a.fb.Width(), a.fb.Height()
	if width == 0 || height == 0 || len(a.scene.Objects) == 0 {
		return
	}
	ray := picking.ScreenToRay(px, py, width, height, a.camera)

	best := -1
	var bestT float32
	for i, obj := range a.scene.Objects {
		if obj.Mesh == nil || obj.Mesh.Bounds == nil {
			continue
		}
		corners := debug.BoxCorners(obj.Mesh.Bounds.Min, obj.Mesh.Bounds.Max)
		world := make([]math.Vec3, 0, len(corners))
		for _, c := range corners {
			world = append(world, renderer.ApplyModel(c, obj))
		}
		t, hit := ray.IntersectAABB(picking.FromCorners(world))
		if !hit {
			continue
		}
		if best < 0 || t < bestT {
			best, bestT = i, t
		}
	}
	if best >= 0 {
		a.scene.Select(best)
	}
}
