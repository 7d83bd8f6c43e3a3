package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var background = color.RGBA{R: 7, G: 8, B: 20, A: 255}

// imageCanvas draws canvas ops onto an Ebiten image in logical units.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear() {
	c.dst.Fill(background)
}

// Rect draws a one-unit halo in glow behind the fill when they differ.
func (c imageCanvas) Rect(x, y, w, h float64, glow, fill core.Color) {
	if glow != fill {
		vector.DrawFilledRect(c.dst, float32(x-1), float32(y-1), float32(w+2), float32(h+2), haloColor(glow.RGBA()), false)
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), fill.RGBA(), false)
}

// haloColor fades a premultiplied color to a third of its opacity.
func haloColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 3, G: c.G / 3, B: c.B / 3, A: c.A / 3}
}

// Text centers the label on (x, y). The debug font has a fixed size.
func (c imageCanvas) Text(text string, x, y, _ float64) {
	n := utf8.RuneCountInString(text)
	ebitenutil.DebugPrintAt(c.dst, text, int(x)-n*glyphW/2, int(y)-glyphH/2)
}

func (c imageCanvas) Line(x1, y1, x2, y2 float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, col.RGBA(), false)
}

func (c imageCanvas) Circle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.RGBA(), true)
}
