package framebuffer

import (
	"image/color"
	"testing"

	"github.com/Faultbox/meshview/pkg/math"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestClear(t *testing.T) {
	fb := New(8, 8)
	fb.Clear(red)

	pix := fb.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 255 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want red", i/4, pix[i:i+4])
		}
	}
}

func TestResizeClampsToOne(t *testing.T) {
	fb := New(0, -5)
	if fb.Width() != 1 || fb.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", fb.Width(), fb.Height())
	}
}

func TestSetPixelBounds(t *testing.T) {
	fb := New(4, 4)
	fb.Clear(black)

	// None of these may panic or write.
	fb.SetPixel(-1, 0, red)
	fb.SetPixel(0, -1, red)
	fb.SetPixel(4, 0, red)
	fb.SetPixel(0, 4, red)

	pix := fb.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 {
			t.Fatalf("out-of-bounds write landed at pixel %d", i/4)
		}
	}
}

func countColored(fb *Framebuffer, c color.RGBA) int {
	n := 0
	pix := fb.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] == c.R && pix[i+1] == c.G && pix[i+2] == c.B {
			n++
		}
	}
	return n
}

func TestFillTriangleCoversInterior(t *testing.T) {
	fb := New(20, 20)
	fb.Clear(black)

	fb.FillTriangle(
		math.Vec2{X: 2, Y: 2},
		math.Vec2{X: 18, Y: 2},
		math.Vec2{X: 2, Y: 18},
		red,
	)

	if got := countColored(fb, red); got == 0 {
		t.Fatal("filled triangle produced no pixels")
	}

	// A point deep inside the triangle must be covered.
	i := 5*fb.RGBA().Stride + 5*4
	if fb.Pix()[i] != 255 {
		t.Error("interior pixel (5,5) not filled")
	}

	// The opposite corner stays untouched.
	i = 18*fb.RGBA().Stride + 18*4
	if fb.Pix()[i] != 0 {
		t.Error("exterior pixel (18,18) filled")
	}
}

func TestFillTriangleClipped(t *testing.T) {
	fb := New(10, 10)
	fb.Clear(black)

	// Vertices far outside the surface: fill must clamp, not panic.
	fb.FillTriangle(
		math.Vec2{X: -100, Y: -100},
		math.Vec2{X: 100, Y: -100},
		math.Vec2{X: 0, Y: 100},
		red,
	)

	if got := countColored(fb, red); got == 0 {
		t.Error("clipped triangle produced no pixels")
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	fb := New(10, 10)
	fb.Clear(black)

	// Zero-area triangle: nothing to fill, nothing to crash.
	p := math.Vec2{X: 5, Y: 5}
	fb.FillTriangle(p, p, p, red)
}

func TestLine(t *testing.T) {
	fb := New(10, 10)
	fb.Clear(black)

	fb.Line(math.Vec2{X: 0, Y: 5}, math.Vec2{X: 9, Y: 5}, red)

	for x := 0; x < 10; x++ {
		i := 5*fb.RGBA().Stride + x*4
		if fb.Pix()[i] != 255 {
			t.Errorf("line pixel (%d,5) not set", x)
		}
	}
}

func TestLineOffSurface(t *testing.T) {
	fb := New(10, 10)
	// Endpoints entirely outside: must not panic.
	fb.Line(math.Vec2{X: -50, Y: -50}, math.Vec2{X: 50, Y: 50}, red)
}
