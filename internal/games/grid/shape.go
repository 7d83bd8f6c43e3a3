package grid

// Shape is a small occupancy matrix, indexed [row][col].
type Shape [][]int

// Width returns the widest row.
func (s Shape) Width() int {
	w := 0
	for _, row := range s {
		w = max(w, len(row))
	}
	return w
}

// Height returns the row count.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned clockwise.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := 0; x < w; x++ {
		out[x] = make([]int, h)
		for y := 0; y < h; y++ {
			out[x][h-1-y] = s.at(x, y)
		}
	}
	return out
}

// RotateCCW returns the shape turned counter-clockwise.
func (s Shape) RotateCCW() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := 0; x < w; x++ {
		out[w-1-x] = make([]int, h)
		for y := 0; y < h; y++ {
			out[w-1-x][y] = s.at(x, y)
		}
	}
	return out
}

func (s Shape) at(x, y int) int {
	if y < 0 || y >= len(s) || x < 0 || x >= len(s[y]) {
		return 0
	}
	return s[y][x]
}

// Cells calls f for every filled cell of the shape, offset by (px, py).
func (s Shape) Cells(px, py int, f func(x, y int)) {
	for y, row := range s {
		for x, v := range row {
			if v != 0 {
				f(px+x, py+y)
			}
		}
	}
}

// Collides reports whether the shape at (px, py) leaves the board or
// overlaps an occupied cell.
func (g *Grid) Collides(s Shape, px, py int) bool {
	hit := false
	s.Cells(px, py, func(x, y int) {
		if !g.In(x, y) || g.Get(x, y) != 0 {
			hit = true
		}
	})
	return hit
}

// Merge writes v into every cell the shape covers at (px, py).
func (g *Grid) Merge(s Shape, px, py, v int) {
	s.Cells(px, py, func(x, y int) {
		g.Set(x, y, v)
	})
}
