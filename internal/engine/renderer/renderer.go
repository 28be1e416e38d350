// Package renderer implements the software rendering pipeline: model, view,
// and perspective transforms, visibility screening, Phong-style shading, and
// a painter's-algorithm compositor. It draws to a CPU framebuffer and never
// touches a GPU API.
package renderer

import (
	"image/color"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/framebuffer"
	"github.com/Faultbox/meshview/internal/engine/scene"
)

// Options is the per-frame snapshot of overlay and shading toggles.
type Options struct {
	Wireframe bool
	Normals   bool
	Bounds    bool
	Specular  bool
}

// FrameStats counts what happened to the frame's triangles.
type FrameStats struct {
	Drawn         int
	Culled        int
	NearRejected  int
	Unprojectable int
}

// Renderer renders a scene through the software pipeline.
type Renderer struct {
	Background color.RGBA
}

// New creates a renderer with the default background.
func New() *Renderer {
	return &Renderer{
		Background: color.RGBA{R: 26, G: 26, B: 38, A: 255},
	}
}

// Frame renders one frame: clear, shade every object's triangles into one
// flat list, composite it back to front, then draw the bounding-box overlay
// pass if enabled.
func (r *Renderer) Frame(fb *framebuffer.Framebuffer, s *scene.Scene, cam *camera.Camera, opts Options) FrameStats {
	var stats FrameStats

	fb.Clear(r.Background)

	tris := shadeScene(s, cam, opts.Specular, &stats)
	compose(fb, tris, s.Selected, opts, &stats)

	if opts.Bounds {
		drawBounds(fb, s, cam)
	}

	return stats
}
