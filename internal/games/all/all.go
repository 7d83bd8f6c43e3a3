// Package all links every arcade variant into the binary. Import it for its
// side effects.
package all

import (
	_ "github.com/vovakirdan/neon-arcade/internal/games/blockpuzzle"
	_ "github.com/vovakirdan/neon-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/neon-arcade/internal/games/bubbleshooter"
	_ "github.com/vovakirdan/neon-arcade/internal/games/commander"
	_ "github.com/vovakirdan/neon-arcade/internal/games/dino"
	_ "github.com/vovakirdan/neon-arcade/internal/games/dk3"
	_ "github.com/vovakirdan/neon-arcade/internal/games/dkjr"
	_ "github.com/vovakirdan/neon-arcade/internal/games/dkong"
	_ "github.com/vovakirdan/neon-arcade/internal/games/doodle"
	_ "github.com/vovakirdan/neon-arcade/internal/games/dotsconnect"
	_ "github.com/vovakirdan/neon-arcade/internal/games/drmario"
	_ "github.com/vovakirdan/neon-arcade/internal/games/endlessmatch"
	_ "github.com/vovakirdan/neon-arcade/internal/games/endlessmemory"
	_ "github.com/vovakirdan/neon-arcade/internal/games/excitecar"
	_ "github.com/vovakirdan/neon-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/neon-arcade/internal/games/galaxy"
	_ "github.com/vovakirdan/neon-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/neon-arcade/internal/games/mario"
	_ "github.com/vovakirdan/neon-arcade/internal/games/memorysounds"
	_ "github.com/vovakirdan/neon-arcade/internal/games/pacman"
	_ "github.com/vovakirdan/neon-arcade/internal/games/pipemania"
	_ "github.com/vovakirdan/neon-arcade/internal/games/pong"
	_ "github.com/vovakirdan/neon-arcade/internal/games/snake"
	_ "github.com/vovakirdan/neon-arcade/internal/games/tetris"
	_ "github.com/vovakirdan/neon-arcade/internal/games/wrecking"
	_ "github.com/vovakirdan/neon-arcade/internal/games/ycookie"
	_ "github.com/vovakirdan/neon-arcade/internal/games/yoshi"
)
