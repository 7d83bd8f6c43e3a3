package tetris

import "github.com/vovakirdan/neon-arcade/internal/games/grid"

// Tetromino shapes in spawn orientation. A piece's grid value is its index
// plus one, which also picks its color.
var tetrominoes = []grid.Shape{
	{{1, 1, 1, 1}},         // I
	{{1, 1}, {1, 1}},       // O
	{{0, 1, 0}, {1, 1, 1}}, // T
	{{0, 1, 1}, {1, 1, 0}}, // S
	{{1, 1, 0}, {0, 1, 1}}, // Z
	{{1, 0, 0}, {1, 1, 1}}, // J
	{{0, 0, 1}, {1, 1, 1}}, // L
}

// Piece is the falling tetromino.
type Piece struct {
	Shape grid.Shape
	Kind  int // index into tetrominoes
	X, Y  int
}
