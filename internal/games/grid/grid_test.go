package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromRows(rows ...[]int) *Grid {
	g := New(len(rows), len(rows[0]))
	for y, row := range rows {
		for x, v := range row {
			g.Set(x, y, v)
		}
	}
	return g
}

func rowsOf(g *Grid) [][]int {
	out := make([][]int, g.Rows)
	for y := range out {
		out[y] = make([]int, g.Cols)
		for x := range out[y] {
			out[y][x] = g.Get(x, y)
		}
	}
	return out
}

func TestGetSetBounds(t *testing.T) {
	g := New(3, 4)
	g.Set(3, 2, 5)
	g.Set(-1, 0, 9)
	g.Set(4, 0, 9)

	assert.Equal(t, 5, g.Get(3, 2))
	assert.Equal(t, 0, g.Get(-1, 0))
	assert.Equal(t, 0, g.Get(0, 3))
	assert.Equal(t, 1, g.Count())
}

func TestClearFullRowsShiftsDown(t *testing.T) {
	g := fromRows(
		[]int{0, 2, 0},
		[]int{1, 1, 1},
		[]int{3, 0, 0},
		[]int{1, 1, 1},
	)

	require.Equal(t, 2, g.ClearFullRows())
	assert.Equal(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 2, 0},
		{3, 0, 0},
	}, rowsOf(g))
}

func TestCollidesAndMerge(t *testing.T) {
	g := New(4, 4)
	g.Set(1, 3, 1)
	square := Shape{{1, 1}, {1, 1}}

	assert.False(t, g.Collides(square, 0, 0))
	assert.True(t, g.Collides(square, 0, 2), "overlaps the occupied cell")
	assert.True(t, g.Collides(square, 3, 0), "leaves the right edge")
	assert.True(t, g.Collides(square, 0, -1), "leaves the top edge")

	g.Merge(square, 2, 2, 7)
	assert.Equal(t, 7, g.Get(3, 3))
	assert.Equal(t, 5, g.Count())
}

func TestShapeRotation(t *testing.T) {
	l := Shape{{1, 0}, {1, 0}, {1, 1}}

	cw := l.Rotate()
	assert.Equal(t, Shape{{1, 1, 1}, {1, 0, 0}}, cw)

	ccw := l.RotateCCW()
	assert.Equal(t, Shape{{0, 0, 1}, {1, 1, 1}}, ccw)

	assert.Equal(t, l, cw.RotateCCW())
	assert.Equal(t, 3, cw.Width())
	assert.Equal(t, 2, cw.Height())
}

func TestClearRunsMaximal(t *testing.T) {
	g := fromRows(
		[]int{2, 2, 2, 2, 1},
		[]int{1, 3, 3, 1, 1},
		[]int{1, 3, 1, 2, 1},
	)

	cleared := g.ClearRuns(true, false)
	assert.Equal(t, 4, cleared)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, rowsOf(g)[0])

	// The right column is a vertical run of three.
	g = fromRows(
		[]int{2, 2, 2, 2, 1},
		[]int{1, 3, 3, 1, 1},
		[]int{1, 3, 1, 2, 1},
	)
	assert.Equal(t, 7, g.ClearRuns(true, true))
	assert.Equal(t, 0, g.Get(4, 2))
}

func TestClearRunsIgnoresEmpty(t *testing.T) {
	g := New(1, 5)
	assert.Zero(t, g.ClearRuns(true, true))
}

func TestGravity(t *testing.T) {
	g := fromRows(
		[]int{1, 0},
		[]int{0, 2},
		[]int{3, 0},
		[]int{0, 0},
	)
	g.Gravity()
	assert.Equal(t, [][]int{
		{0, 0},
		{0, 0},
		{1, 0},
		{3, 2},
	}, rowsOf(g))
}

func TestRefillAndResolve(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := fromRows(
		[]int{4, 0, 4},
		[]int{1, 1, 1},
	)

	cleared := g.Resolve(rng, 3, true, false)
	assert.Equal(t, 3, cleared)
	assert.Equal(t, 6, g.Count(), "refill leaves no empty cell")
	assert.Equal(t, 4, g.Get(0, 1), "survivors fall to the bottom")
	assert.Equal(t, 4, g.Get(2, 1))
	for x := 0; x < 3; x++ {
		v := g.Get(x, 0)
		assert.True(t, v >= 1 && v <= 3, "refilled value %d out of range", v)
	}
}

func TestFloodFillAndDropFloating(t *testing.T) {
	g := fromRows(
		[]int{1, 1, 0, 2},
		[]int{0, 1, 0, 0},
		[]int{0, 0, 3, 3},
	)

	group := g.FloodFill(Point{0, 0}, func(v int) bool { return v == 1 })
	assert.ElementsMatch(t, []Point{{0, 0}, {1, 0}, {1, 1}}, group)
	assert.Nil(t, g.FloodFill(Point{2, 0}, func(v int) bool { return v == 1 }))

	assert.Equal(t, 2, g.DropFloating())
	assert.Equal(t, 0, g.Get(2, 2))
	assert.Equal(t, 2, g.Get(3, 0))
}

func TestSwap(t *testing.T) {
	g := fromRows([]int{1, 2})
	g.Swap(Point{0, 0}, Point{1, 0})
	assert.Equal(t, [][]int{{2, 1}}, rowsOf(g))

	g.Swap(Point{1, 0}, Point{2, 0})
	assert.Equal(t, [][]int{{2, 1}}, rowsOf(g), "swap off the board is ignored")
}
