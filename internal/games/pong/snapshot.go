package pong

// Snapshot captures the game state for tests.
type Snapshot struct {
	Paddle1Y float64
	Paddle2Y float64
	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	Score1   int
	Score2   int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Paddle1Y: g.p1.Y,
		Paddle2Y: g.p2.Y,
		BallX:    g.ballX,
		BallY:    g.ballY,
		BallVX:   g.ballVX,
		BallVY:   g.ballVY,
		Score1:   g.score1,
		Score2:   g.score2,
	}
}
