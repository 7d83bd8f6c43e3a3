// Package excitecar implements a three-lane dodging racer.
package excitecar

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	minLane       = 1
	maxLane       = 3
	obstacleCount = 4
	obstacleGap   = 240 // vertical distance between obstacles
	obstacleSpeed = 4
	carH          = 28
	obstacleH     = 26
)

type obstacle struct {
	lane int
	y    float64
}

// Game implements Excitecar.
type Game struct {
	score core.Score

	laneW     float64
	lane      int
	carY      float64
	obstacles []obstacle
}

// New creates an Excitecar game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("excitecar", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "excitecar" }

// Title returns the display name.
func (g *Game) Title() string { return "Excitecar" }

// Score returns the number of obstacles passed.
func (g *Game) Score() int { return g.score.Int() }

// Reset puts the car in the middle lane and stacks obstacles above the screen.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.laneW = env.W / 4
	g.lane = 2
	g.carY = env.H - 90
	g.obstacles = g.obstacles[:0]
	for i := 0; i < obstacleCount; i++ {
		g.obstacles = append(g.obstacles, obstacle{lane: randomLane(env), y: -obstacleH - float64(i)*obstacleGap})
	}
}

func randomLane(env *core.Env) int {
	return minLane + env.Rand.Intn(maxLane-minLane+1)
}

// laneX returns the left edge of a body of width w centered in lane.
func (g *Game) laneX(lane int, w float64) float64 {
	return float64(lane)*g.laneW - g.laneW/2 - w/2
}

// Update changes lanes on key presses and scrolls the obstacles.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	dx, _ := env.Input.PressedAxis()
	g.lane = core.Clamp(g.lane+dx, minLane, maxLane)

	top := 0.0
	for i := range g.obstacles {
		g.obstacles[i].y += obstacleSpeed
		top = min(top, g.obstacles[i].y)
	}
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if o.y > env.H {
			g.score++
			top -= obstacleGap
			o.y = top
			o.lane = randomLane(env)
		}
	}

	for _, o := range g.obstacles {
		if o.lane == g.lane && o.y < g.carY+carH && o.y+obstacleH > g.carY {
			env.GameOver(g.Score())
			return
		}
	}
}

// Draw renders the lane markers, the obstacles and the car.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for i := minLane; i <= maxLane+1; i++ {
		x := float64(i-1) * g.laneW
		c.Line(x, 0, x, env.H, core.ColorDim)
	}
	w := g.laneW * 0.5
	for _, o := range g.obstacles {
		c.Rect(g.laneX(o.lane, w), o.y, w, obstacleH, core.ColorOrange, core.ColorOrange)
	}
	c.Rect(g.laneX(g.lane, w), g.carY, w, carH, core.ColorCyan, core.ColorWhite)
}
