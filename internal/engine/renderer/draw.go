package renderer

import (
	"image/color"
	"sort"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/framebuffer"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/pkg/math"
)

// normalOverlayLength is the view-space length of the stroked normal segment.
const normalOverlayLength = 0.25

var (
	strokeNeutral  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	strokeSelected = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	strokeNormal   = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	strokeBounds   = color.RGBA{R: 70, G: 160, B: 220, A: 255}
)

// compose depth-sorts the cross-object draw list and paints it back to
// front. Sorting is global so overlapping geometry from different objects
// composites correctly; tie order among equal depths is unspecified.
func compose(fb *framebuffer.Framebuffer, tris []ShadedTriangle, selected int, opts Options, stats *FrameStats) {
	sort.Slice(tris, func(i, j int) bool {
		return tris[i].AvgZ > tris[j].AvgZ
	})

	aspect := fb.Aspect()
	w, h := fb.Width(), fb.Height()

	for i := range tris {
		t := &tris[i]

		na, okA := Project(t.A, aspect)
		nb, okB := Project(t.B, aspect)
		nc, okC := Project(t.C, aspect)
		if !okA || !okB || !okC {
			stats.Unprojectable++
			continue
		}

		pa := ToScreen(na, w, h)
		pb := ToScreen(nb, w, h)
		pc := ToScreen(nc, w, h)

		fb.FillTriangle(pa, pb, pc, shadeColor(t.Color, t.Diffuse, t.Specular))
		stats.Drawn++

		if opts.Wireframe {
			stroke := strokeNeutral
			if t.Object == selected {
				stroke = strokeSelected
			}
			fb.StrokeTriangle(pa, pb, pc, stroke)
		}

		if opts.Normals {
			drawNormal(fb, t, aspect)
		}
	}
}

// shadeColor resolves the final per-channel color: base scaled by the
// diffuse term plus a white specular highlight, clamped.
func shadeColor(base scene.Color, diffuse, specular float32) color.RGBA {
	return color.RGBA{
		R: clampChannel(float32(base.R)*diffuse + 255*specular),
		G: clampChannel(float32(base.G)*diffuse + 255*specular),
		B: clampChannel(float32(base.B)*diffuse + 255*specular),
		A: 255,
	}
}

func clampChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// drawNormal strokes a short segment from the triangle centroid along its
// face normal. Either endpoint failing projection skips the overlay.
func drawNormal(fb *framebuffer.Framebuffer, t *ShadedTriangle, aspect float32) {
	centroid := t.A.Add(t.B).Add(t.C).Scale(1.0 / 3.0)
	tip := centroid.Add(t.Normal.Scale(normalOverlayLength))

	n0, ok0 := Project(centroid, aspect)
	n1, ok1 := Project(tip, aspect)
	if !ok0 || !ok1 {
		return
	}

	w, h := fb.Width(), fb.Height()
	fb.Line(ToScreen(n0, w, h), ToScreen(n1, w, h), strokeNormal)
}

// drawBounds strokes each object's normalized bounding box. The pass is
// independent of the sorted triangle loop; box edges with any endpoint
// failing projection are simply omitted.
func drawBounds(fb *framebuffer.Framebuffer, s *scene.Scene, cam *camera.Camera) {
	aspect := fb.Aspect()
	w, h := fb.Width(), fb.Height()

	for _, obj := range s.Objects {
		if obj.Mesh == nil || obj.Mesh.Bounds == nil {
			continue
		}

		corners := debug.BoxCorners(obj.Mesh.Bounds.Min, obj.Mesh.Bounds.Max)

		var view [8]math.Vec3
		for i, corner := range corners {
			view[i] = cam.ApplyView(ApplyModel(corner, obj))
		}

		for _, e := range debug.BoxEdges {
			n0, ok0 := Project(view[e[0]], aspect)
			n1, ok1 := Project(view[e[1]], aspect)
			if !ok0 || !ok1 {
				continue
			}
			fb.Line(ToScreen(n0, w, h), ToScreen(n1, w, h), strokeBounds)
		}
	}
}
