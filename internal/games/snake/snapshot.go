package snake

// Snapshot captures the game state for tests.
type Snapshot struct {
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.body) > 0 {
		headX = g.body[0].X
		headY = g.body[0].Y
	}

	return Snapshot{
		Score:    g.Score(),
		SnakeLen: len(g.body),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
	}
}
