// Package memorysounds implements a Simon-style tone memory game: listen to
// the sequence, then repeat it on the pads.
package memorysounds

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	padSize    = 120
	padGap     = 20
	padTop     = 120
	inputTone  = 0.18
	maxPads    = 4
	defaultGap = 0.6
)

// padKeys maps each pad to the arrow that selects it.
var padKeys = [maxPads][2]core.Key{
	{core.KeyUp, core.KeyW},
	{core.KeyRight, core.KeyD},
	{core.KeyLeft, core.KeyA},
	{core.KeyDown, core.KeyS},
}

// Game implements Memory Sounds.
type Game struct {
	cfg   config.MemorySoundsConfig
	score core.Score

	seq     []int
	input   []int
	playing bool
	t       float64
	pointer int
}

// New creates a Memory Sounds game.
func New(cfg config.MemorySoundsConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("memorysounds", func(cfg config.Config) registry.Game {
		return New(cfg.MemorySounds)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "memorysounds" }

// Title returns the display name.
func (g *Game) Title() string { return "Memory Sounds" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

func (g *Game) pads() int {
	return min(len(g.cfg.Pads), maxPads)
}

func (g *Game) stepEvery() float64 {
	if g.cfg.StepEvery <= 0 {
		return defaultGap
	}
	return g.cfg.StepEvery
}

// Reset starts a one-step sequence in playback.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.seq = g.seq[:0]
	g.addStep(env)
}

func (g *Game) addStep(env *core.Env) {
	if n := g.pads(); n > 0 {
		g.seq = append(g.seq, env.Rand.Intn(n))
	}
	g.input = g.input[:0]
	g.playing = true
	g.t = 0
	g.pointer = 0
}

// Update plays the sequence back, then reads the player's answer.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() || len(g.seq) == 0 {
		return
	}

	if g.playing {
		g.t += dt
		if g.t > g.stepEvery() {
			g.t = 0
			env.Tone(g.cfg.Pads[g.seq[g.pointer]], g.cfg.ToneDur)
			g.pointer++
			if g.pointer >= len(g.seq) {
				g.playing = false
				g.pointer = 0
			}
		}
		return
	}

	sel := g.selected(env.Input)
	if sel < 0 || !env.Input.Pressed(core.KeySpace) {
		return
	}
	g.submit(env, sel)
}

// selected returns the pad whose arrow is held, or -1.
func (g *Game) selected(in *core.Input) int {
	for i := 0; i < g.pads(); i++ {
		if in.Held(padKeys[i][:]...) {
			return i
		}
	}
	return -1
}

func (g *Game) submit(env *core.Env, pad int) {
	env.Tone(g.cfg.Pads[pad], inputTone)
	g.input = append(g.input, pad)
	i := len(g.input) - 1
	switch {
	case g.input[i] != g.seq[i]:
		env.GameOver(g.Score())
	case len(g.input) == len(g.seq):
		g.score += core.Score(len(g.seq))
		g.addStep(env)
	}
}

// Draw renders the pads, lighting the one being played.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for i := 0; i < g.pads(); i++ {
		x := env.W/2 - padSize - padGap + float64(i%2)*(padSize+padGap)
		y := padTop + float64(i/2)*(padSize+padGap)
		fill := core.TokenColor(i + 1)
		glow := fill
		if g.playing && len(g.seq) > 0 && i == g.seq[min(g.pointer, len(g.seq)-1)] {
			glow = core.ColorWhite
		}
		c.Rect(x, y, padSize, padSize, glow, fill)
	}
	label := "Repeat the sequence: arrow + SPACE"
	if g.playing {
		label = "Listen..."
	}
	c.Text(label, env.W/2, env.H-40, 16)
}
