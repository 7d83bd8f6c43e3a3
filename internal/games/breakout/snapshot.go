package breakout

// Snapshot captures the game state for tests.
type Snapshot struct {
	PaddleX         float64
	BallX, BallY    float64
	BallVX, BallVY  float64
	Score           int
	BricksRemaining int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		PaddleX:         g.paddle.X,
		BallX:           g.ball.X,
		BallY:           g.ball.Y,
		BallVX:          g.ball.VX,
		BallVY:          g.ball.VY,
		Score:           g.Score(),
		BricksRemaining: g.level.CountAlive(),
	}
}
