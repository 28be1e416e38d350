// Package framebuffer provides the CPU raster surface the pipeline draws to.
package framebuffer

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// Framebuffer is an RGBA pixel buffer with solid fill and stroke primitives.
// Coordinates are device pixels with the origin at the top left.
type Framebuffer struct {
	img    *image.RGBA
	width  int
	height int
}

// New creates a framebuffer. Dimensions below 1 are raised to 1.
func New(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates the buffer for a new surface size.
func (fb *Framebuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	fb.width = width
	fb.height = height
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Width returns the surface width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the surface height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Aspect returns width/height.
func (fb *Framebuffer) Aspect() float32 {
	return float32(fb.width) / float32(fb.height)
}

// RGBA exposes the underlying image for presentation, text overlays, and
// snapshot export.
func (fb *Framebuffer) RGBA() *image.RGBA { return fb.img }

// Pix returns the raw RGBA bytes, row-major.
func (fb *Framebuffer) Pix() []byte { return fb.img.Pix }

// Clear fills the whole surface with one color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	pix := fb.img.Pix
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for i := 4; i < len(pix); i *= 2 {
		copy(pix[i:], pix[:i])
	}
}

// SetPixel writes one pixel, ignoring out-of-bounds coordinates.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	i := y*fb.img.Stride + x*4
	fb.img.Pix[i+0] = c.R
	fb.img.Pix[i+1] = c.G
	fb.img.Pix[i+2] = c.B
	fb.img.Pix[i+3] = c.A
}

// Line strokes a one-pixel segment between two screen points (DDA).
func (fb *Framebuffer) Line(a, b math.Vec2, c color.RGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	steps := gomath.Abs(float64(dx))
	if abs := gomath.Abs(float64(dy)); abs > steps {
		steps = abs
	}
	n := int(steps)
	if n == 0 {
		fb.SetPixel(int(a.X), int(a.Y), c)
		return
	}

	xInc := dx / float32(n)
	yInc := dy / float32(n)
	x, y := a.X, a.Y
	for i := 0; i <= n; i++ {
		fb.SetPixel(int(x), int(y), c)
		x += xInc
		y += yInc
	}
}

// StrokeTriangle strokes the three edges of a screen-space triangle.
func (fb *Framebuffer) StrokeTriangle(a, b, cv math.Vec2, c color.RGBA) {
	fb.Line(a, b, c)
	fb.Line(b, cv, c)
	fb.Line(cv, a, c)
}

// FillTriangle fills a screen-space triangle with a solid color using
// per-row scanline intersection against the three edges.
func (fb *Framebuffer) FillTriangle(a, b, cv math.Vec2, c color.RGBA) {
	minY := int(gomath.Floor(float64(min3(a.Y, b.Y, cv.Y))))
	maxY := int(gomath.Ceil(float64(max3(a.Y, b.Y, cv.Y))))
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.height-1 {
		maxY = fb.height - 1
	}

	edges := [3][2]math.Vec2{{a, b}, {b, cv}, {cv, a}}

	for y := minY; y <= maxY; y++ {
		fy := float32(y) + 0.5

		var xs [3]float32
		n := 0
		for _, e := range edges {
			y0, y1 := e[0].Y, e[1].Y
			if (y0 <= fy && fy < y1) || (y1 <= fy && fy < y0) {
				t := (fy - y0) / (y1 - y0)
				xs[n] = e[0].X + t*(e[1].X-e[0].X)
				n++
			}
		}
		if n < 2 {
			continue
		}

		xMin, xMax := xs[0], xs[0]
		for _, x := range xs[1:n] {
			if x < xMin {
				xMin = x
			}
			if x > xMax {
				xMax = x
			}
		}

		left := int(gomath.Ceil(float64(xMin - 0.5)))
		right := int(gomath.Floor(float64(xMax - 0.5)))
		if left < 0 {
			left = 0
		}
		if right > fb.width-1 {
			right = fb.width - 1
		}
		if left > right {
			continue
		}

		i := y*fb.img.Stride + left*4
		for x := left; x <= right; x++ {
			fb.img.Pix[i+0] = c.R
			fb.img.Pix[i+1] = c.G
			fb.img.Pix[i+2] = c.B
			fb.img.Pix[i+3] = c.A
			i += 4
		}
	}
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
