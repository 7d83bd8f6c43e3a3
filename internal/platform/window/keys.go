package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyX:          core.KeyX,
	ebiten.KeyP:          core.KeyP,
	ebiten.KeyR:          core.KeyR,
}

// MapKey converts an Ebiten key to an arcade key.
func MapKey(k ebiten.Key) (core.Key, bool) {
	ck, ok := keyMap[k]
	return ck, ok
}
