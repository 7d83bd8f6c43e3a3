package grid

import "math/rand"

// MinRun is the shortest run that clears.
const MinRun = 3

// MarkRuns returns a mask of cells that belong to a run of MinRun or more
// equal, non-zero values along the enabled axes. Whole maximal runs are
// marked, so a run of four marks four cells.
func (g *Grid) MarkRuns(horizontal, vertical bool) []bool {
	mask := make([]bool, len(g.cells))
	if horizontal {
		for y := 0; y < g.Rows; y++ {
			g.markLine(mask, g.Cols, func(i int) Point { return Point{i, y} })
		}
	}
	if vertical {
		for x := 0; x < g.Cols; x++ {
			g.markLine(mask, g.Rows, func(i int) Point { return Point{x, i} })
		}
	}
	return mask
}

func (g *Grid) markLine(mask []bool, n int, at func(i int) Point) {
	start := 0
	for i := 1; i <= n; i++ {
		p := at(start)
		v := g.Get(p.X, p.Y)
		if i < n {
			q := at(i)
			if g.Get(q.X, q.Y) == v {
				continue
			}
		}
		if v != 0 && i-start >= MinRun {
			for j := start; j < i; j++ {
				q := at(j)
				mask[q.Y*g.Cols+q.X] = true
			}
		}
		start = i
	}
}

// ClearRuns zeroes every marked run and returns the number of cells
// cleared. It does not apply gravity.
func (g *Grid) ClearRuns(horizontal, vertical bool) int {
	mask := g.MarkRuns(horizontal, vertical)
	cleared := 0
	for i, m := range mask {
		if m {
			g.cells[i] = 0
			cleared++
		}
	}
	return cleared
}

// Resolve runs one clear, gravity and refill pass with values in 1..n.
// There is no cascade: runs formed by the refill stay on the board.
func (g *Grid) Resolve(rng *rand.Rand, n int, horizontal, vertical bool) int {
	cleared := g.ClearRuns(horizontal, vertical)
	g.Gravity()
	g.Refill(rng, n)
	return cleared
}
