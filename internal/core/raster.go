package core

import "math"

// edgeEps absorbs float error on cell edges.
const edgeEps = 1e-9

// Raster draws the logical surface onto a Screen. Each cell covers
// width/cols by height/rows logical units; every shape covers at least one
// cell so small projectiles stay visible.
type Raster struct {
	screen *Screen
	width  float64
	height float64
}

// NewRaster creates a raster mapping a width x height logical surface onto s.
func NewRaster(s *Screen, width, height float64) *Raster {
	return &Raster{screen: s, width: width, height: height}
}

// Screen returns the target buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

func (r *Raster) scale() (sx, sy float64) {
	if r.width <= 0 || r.height <= 0 {
		return 0, 0
	}
	return float64(r.screen.Width()) / r.width, float64(r.screen.Height()) / r.height
}

// cell maps a logical point to the cell containing it.
func (r *Raster) cell(x, y float64) (int, int) {
	sx, sy := r.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// Clear blanks the screen.
func (r *Raster) Clear() {
	r.screen.Clear()
}

// Rect fills the cells covered by the box.
func (r *Raster) Rect(x, y, w, h float64, _, fill Color) {
	sx, sy := r.scale()
	x0, y0 := int(math.Floor(x*sx)), int(math.Floor(y*sy))
	x1, y1 := int(math.Ceil((x+w)*sx-edgeEps)), int(math.Ceil((y+h)*sy-edgeEps))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), '█', fill)
}

// Text writes the label centered on the cell containing (x, y). Large sizes
// are spaced out to read as headings.
func (r *Raster) Text(text string, x, y, size float64) {
	if size >= 28 {
		spaced := make([]rune, 0, len(text)*2)
		for i, c := range []rune(text) {
			if i > 0 {
				spaced = append(spaced, ' ')
			}
			spaced = append(spaced, c)
		}
		text = string(spaced)
	}
	cx, cy := r.cell(x, y)
	r.screen.DrawText(cx-len([]rune(text))/2, cy, text, ColorWhite)
}

// Line walks the cells between the endpoints (Bresenham).
func (r *Raster) Line(x1, y1, x2, y2 float64, c Color) {
	ax, ay := r.cell(x1, y1)
	bx, by := r.cell(x2, y2)

	dx := Abs(bx - ax)
	dy := -Abs(by - ay)
	stepX, stepY := 1, 1
	if ax > bx {
		stepX = -1
	}
	if ay > by {
		stepY = -1
	}
	e := dx + dy
	for {
		r.screen.SetCell(ax, ay, '·', c)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += stepX
		}
		if e2 <= dx {
			e += dx
			ay += stepY
		}
	}
}

// Circle fills every cell whose center lies within the radius.
func (r *Raster) Circle(cx, cy, rad float64, c Color) {
	sx, sy := r.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, y0 := r.cell(cx-rad, cy-rad)
	x1, y1 := r.cell(cx+rad, cy+rad)
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if Dist(px, py, cx, cy) <= rad {
				r.screen.SetCell(x, y, '█', c)
				drawn = true
			}
		}
	}
	if !drawn {
		mx, my := r.cell(cx, cy)
		r.screen.SetCell(mx, my, '●', c)
	}
}
