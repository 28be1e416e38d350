// Package hud draws text overlays directly onto the framebuffer.
package hud

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the vertical advance between overlay lines in pixels.
const LineHeight = 14

// HUD renders fixed-width text into an RGBA image.
type HUD struct {
	face font.Face
}

// New creates a HUD using the built-in 7x13 face.
func New() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// DrawLine draws one line of text with its baseline at (x, y).
func (h *HUD) DrawLine(dst *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: h.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// DrawLines draws consecutive lines starting at (x, y), advancing by
// LineHeight. Empty strings produce blank lines.
func (h *HUD) DrawLines(dst *image.RGBA, x, y int, lines []string, c color.RGBA) {
	for i, line := range lines {
		if line == "" {
			continue
		}
		h.DrawLine(dst, x, y+i*LineHeight, line, c)
	}
}

// DrawCentered draws text horizontally centered at baseline y.
func (h *HUD) DrawCentered(dst *image.RGBA, y int, text string, c color.RGBA) {
	width := font.MeasureString(h.face, text).Ceil()
	x := (dst.Bounds().Dx() - width) / 2
	if x < 0 {
		x = 0
	}
	h.DrawLine(dst, x, y, text, c)
}
