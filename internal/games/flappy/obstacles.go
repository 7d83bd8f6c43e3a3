package flappy

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Pipe geometry in surface units.
const (
	pipeCount  = 5
	pipeWidth  = 38
	gapMinTop  = 40
	gapReserve = 160 // vertical space kept free of gap tops
)

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X      float64 // Left edge
	Top    float64 // Bottom of the upper pipe
	Bottom float64 // Top of the lower pipe
}

// Blocks reports whether a point is inside the pipe column but outside its gap.
func (p Pipe) Blocks(x, y float64) bool {
	return x > p.X && x < p.X+pipeWidth && (y < p.Top || y > p.Bottom)
}

// PipeManager handles spawning, movement and recycling of pipes.
type PipeManager struct {
	pipes []Pipe
	cfg   config.FlappyConfig
}

// NewPipeManager creates a pipe manager with the given tuning.
func NewPipeManager(cfg config.FlappyConfig) *PipeManager {
	return &PipeManager{cfg: cfg}
}

// Reset lines up a fresh row of pipes just past the right edge.
func (pm *PipeManager) Reset(rng *rand.Rand, w, h float64) {
	pm.pipes = pm.pipes[:0]
	for i := 0; i < pipeCount; i++ {
		pm.pipes = append(pm.pipes, pm.newPipe(rng, w+float64(i)*pm.cfg.Spacing, h))
	}
}

func (pm *PipeManager) newPipe(rng *rand.Rand, x, h float64) Pipe {
	top := gapMinTop + rng.Float64()*max(h-gapReserve-pm.cfg.Gap, 0)
	return Pipe{X: x, Top: top, Bottom: top + pm.cfg.Gap}
}

// Update scrolls the pipes left. A pipe that fully leaves the screen is
// replaced behind the rightmost one. It returns how many pipes were passed.
func (pm *PipeManager) Update(rng *rand.Rand, h float64) int {
	for i := range pm.pipes {
		pm.pipes[i].X -= pm.cfg.PipeSpeed
	}

	passed := 0
	kept := pm.pipes[:0]
	var rightmost float64
	for _, p := range pm.pipes {
		if p.X+pipeWidth < 0 {
			passed++
			continue
		}
		rightmost = max(rightmost, p.X)
		kept = append(kept, p)
	}
	pm.pipes = kept
	for range passed {
		rightmost += pm.cfg.Spacing
		pm.pipes = append(pm.pipes, pm.newPipe(rng, rightmost, h))
	}
	return passed
}

// Pipes returns the current pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision reports whether the bird center hits any pipe.
func (pm *PipeManager) CheckCollision(x, y float64) bool {
	for _, p := range pm.pipes {
		if p.Blocks(x, y) {
			return true
		}
	}
	return false
}

func (p Pipe) draw(c core.Canvas, h float64) {
	c.Rect(p.X, 0, pipeWidth, p.Top, core.ColorGreen, core.ColorGreen)
	c.Rect(p.X, p.Bottom, pipeWidth, h-p.Bottom, core.ColorGreen, core.ColorGreen)
}
