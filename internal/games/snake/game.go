// Package snake implements the classic wrap-around Snake.
package snake

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Game implements the Snake game.
type Game struct {
	cfg   config.SnakeConfig
	score core.Score

	cols, rows int
	acc        float64 // time since the last step

	// Snake state
	body      []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for the next step
	food      Point
}

// New creates a Snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake", func(cfg config.Config) registry.Game {
		return New(cfg.Snake)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset places a three-segment snake in the middle of the board, heading right.
func (g *Game) Reset(env *core.Env) {
	cell := g.cell()
	g.cols = max(int(env.W/cell), 1)
	g.rows = max(int(env.H/cell), 1)
	g.score = 0
	g.acc = 0
	g.direction = DirRight
	g.nextDir = DirRight

	cx, cy := g.cols/2, g.rows/2
	g.body = []Point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.spawnFood(env)
}

func (g *Game) cell() float64 {
	if g.cfg.Cell <= 0 {
		return 24
	}
	return g.cfg.Cell
}

// spawnFood picks a uniformly random cell. It may land on the body.
func (g *Game) spawnFood(env *core.Env) {
	g.food = Point{env.Rand.Intn(g.cols), env.Rand.Intn(g.rows)}
}

// Update buffers the held direction and steps the snake on its interval.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	g.processInput(env.Input)

	g.acc += dt
	if g.acc < g.cfg.StepEvery {
		return
	}
	g.acc = 0
	g.step(env)
}

// processInput handles direction changes.
func (g *Game) processInput(in *core.Input) {
	newDir := g.nextDir

	switch {
	case in.Up():
		newDir = DirUp
	case in.Down():
		newDir = DirDown
	case in.Left():
		newDir = DirLeft
	case in.Right():
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1+2)%4 == d2
}

// step moves the snake one cell in the buffered direction.
func (g *Game) step(env *core.Env) {
	g.direction = g.nextDir

	head := g.body[0]
	switch g.direction {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}
	head.X = (head.X + g.cols) % g.cols
	head.Y = (head.Y + g.rows) % g.rows

	for _, seg := range g.body {
		if seg == head {
			env.GameOver(g.Score())
			return
		}
	}

	g.body = append([]Point{head}, g.body...)
	if head == g.food {
		g.score += core.Score(g.cfg.FoodScore)
		g.spawnFood(env)
		return
	}
	g.body = g.body[:len(g.body)-1]
}

// Draw renders the body and the food.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	cell := g.cell()

	c.Rect(float64(g.food.X)*cell+4, float64(g.food.Y)*cell+4, cell-8, cell-8, core.ColorMagenta, core.ColorMagenta)
	for i, seg := range g.body {
		color := core.ColorCyan
		if i == 0 {
			color = core.ColorWhite
		}
		c.Rect(float64(seg.X)*cell+1, float64(seg.Y)*cell+1, cell-2, cell-2, core.ColorCyan, color)
	}
	c.Text(fmt.Sprintf("LEN %d", len(g.body)), env.W-60, 20, 14)
}
