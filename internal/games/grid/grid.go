// Package grid provides the bounds-checked cell board shared by the
// falling-block, match and bubble games. Cell value 0 means empty; any
// other value is a token or color id.
package grid

import "math/rand"

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a fixed-size board of rows x cols cells.
type Grid struct {
	Rows, Cols int
	cells      []int
}

// New creates an empty grid. Negative sizes are treated as zero.
func New(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid{Rows: rows, Cols: cols, cells: make([]int, rows*cols)}
}

// In reports whether (x, y) lies on the board.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Cols && y < g.Rows
}

// Get returns the cell value, or 0 off the board.
func (g *Grid) Get(x, y int) int {
	if !g.In(x, y) {
		return 0
	}
	return g.cells[y*g.Cols+x]
}

// Set writes a cell. Writes off the board are ignored.
func (g *Grid) Set(x, y, v int) {
	if g.In(x, y) {
		g.cells[y*g.Cols+x] = v
	}
}

// Swap exchanges two cells if both are on the board.
func (g *Grid) Swap(a, b Point) {
	if !g.In(a.X, a.Y) || !g.In(b.X, b.Y) {
		return
	}
	va, vb := g.Get(a.X, a.Y), g.Get(b.X, b.Y)
	g.Set(a.X, a.Y, vb)
	g.Set(b.X, b.Y, va)
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Fill sets every cell from f.
func (g *Grid) Fill(f func(x, y int) int) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			g.Set(x, y, f(x, y))
		}
	}
}

// Count returns how many cells are occupied.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.Rows || g.Cols == 0 {
		return false
	}
	for x := 0; x < g.Cols; x++ {
		if g.Get(x, y) == 0 {
			return false
		}
	}
	return true
}

// ClearRow empties row y.
func (g *Grid) ClearRow(y int) {
	for x := 0; x < g.Cols; x++ {
		g.Set(x, y, 0)
	}
}

// ClearFullRows removes every full row, shifting the rows above it down
// and inserting empty rows at the top. It returns the number removed.
func (g *Grid) ClearFullRows() int {
	removed := 0
	dst := g.Rows - 1
	for y := g.Rows - 1; y >= 0; y-- {
		if g.RowFull(y) {
			removed++
			continue
		}
		if dst != y {
			copy(g.row(dst), g.row(y))
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(g.row(dst))
	}
	return removed
}

func (g *Grid) row(y int) []int {
	return g.cells[y*g.Cols : (y+1)*g.Cols]
}

// Gravity compacts every column downward, leaving empty cells at the top.
func (g *Grid) Gravity() {
	for x := 0; x < g.Cols; x++ {
		dst := g.Rows - 1
		for y := g.Rows - 1; y >= 0; y-- {
			if v := g.Get(x, y); v != 0 {
				g.Set(x, y, 0)
				g.Set(x, dst, v)
				dst--
			}
		}
	}
}

// Refill puts a random value in 1..n into every empty cell and returns how
// many cells were filled.
func (g *Grid) Refill(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	filled := 0
	for i, v := range g.cells {
		if v == 0 {
			g.cells[i] = 1 + rng.Intn(n)
			filled++
		}
	}
	return filled
}

var neighbors = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FloodFill returns the 4-connected cells reachable from start whose value
// satisfies match. The start cell must match too.
func (g *Grid) FloodFill(start Point, match func(v int) bool) []Point {
	if !g.In(start.X, start.Y) || !match(g.Get(start.X, start.Y)) {
		return nil
	}
	seen := make(map[Point]bool)
	seen[start] = true
	stack := []Point{start}
	var group []Point
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, p)
		for _, d := range neighbors {
			n := Point{p.X + d.X, p.Y + d.Y}
			if g.In(n.X, n.Y) && !seen[n] && match(g.Get(n.X, n.Y)) {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return group
}

// Anchored returns a mask of occupied cells connected to row 0.
func (g *Grid) Anchored() []bool {
	mask := make([]bool, len(g.cells))
	occupied := func(v int) bool { return v != 0 }
	for x := 0; x < g.Cols; x++ {
		if mask[x] || g.Get(x, 0) == 0 {
			continue
		}
		for _, p := range g.FloodFill(Point{x, 0}, occupied) {
			mask[p.Y*g.Cols+p.X] = true
		}
	}
	return mask
}

// DropFloating empties occupied cells not connected to row 0 and returns
// how many were dropped.
func (g *Grid) DropFloating() int {
	mask := g.Anchored()
	dropped := 0
	for i, v := range g.cells {
		if v != 0 && !mask[i] {
			g.cells[i] = 0
			dropped++
		}
	}
	return dropped
}
