package dino

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Obstacle row layout in surface units.
const (
	obstacleCount = 4
	firstObstacle = 420 // x of the first obstacle after a reset
)

// Cactus represents a ground obstacle the player must jump over.
type Cactus struct {
	core.Box
}

// ObstacleManager handles spawning, movement and removal of cacti.
type ObstacleManager struct {
	cacti []Cactus
	cfg   config.DinoConfig
}

// NewObstacleManager creates a new obstacle manager.
func NewObstacleManager(cfg config.DinoConfig) *ObstacleManager {
	return &ObstacleManager{cfg: cfg}
}

// Reset clears all cacti and lines up a fresh row standing on groundY.
func (om *ObstacleManager) Reset(rng *rand.Rand, groundY float64) {
	om.cacti = om.cacti[:0]
	for i := 0; i < obstacleCount; i++ {
		om.cacti = append(om.cacti, newCactus(rng, firstObstacle+float64(i)*om.cfg.Spacing, groundY))
	}
}

func newCactus(rng *rand.Rand, x, groundY float64) Cactus {
	h := 24 + rng.Float64()*28
	w := 22 + rng.Float64()*26
	return Cactus{core.Box{X: x, Y: groundY - h, W: w, H: h}}
}

// Update moves all cacti left. When the leading cactus leaves the screen it
// is replaced by a new one one spacing past the right edge. It returns the
// number of cacti passed.
func (om *ObstacleManager) Update(rng *rand.Rand, w, groundY float64) int {
	for i := range om.cacti {
		om.cacti[i].X -= om.cfg.Speed
	}
	if len(om.cacti) == 0 || om.cacti[0].X+om.cacti[0].W >= 0 {
		return 0
	}
	om.cacti = append(om.cacti[1:], newCactus(rng, w+om.cfg.Spacing, groundY))
	return 1
}

// Cacti returns the current list of cacti.
func (om *ObstacleManager) Cacti() []Cactus {
	return om.cacti
}

// CheckCollision reports whether the player box touches any cactus.
func (om *ObstacleManager) CheckCollision(player core.Box) bool {
	for _, c := range om.cacti {
		if player.Touches(c.Box) {
			return true
		}
	}
	return false
}
