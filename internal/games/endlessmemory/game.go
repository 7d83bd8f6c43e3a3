// Package endlessmemory implements a pair-matching card game that deals a
// fresh deck every time the table is cleared.
package endlessmemory

import (
	"strconv"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	pairs     = 8
	deckCols  = 4
	cardPitch = 80
	cardSize  = 70
	deckTop   = 80
	flipFreq  = 600
	flipDur   = 0.25
	pairScore = 5
)

type card struct {
	value   int
	faceUp  bool
	matched bool
}

// Game implements Endless Memory.
type Game struct {
	score   core.Score
	cards   []card
	open    []int // indexes of face-up unmatched cards, at most one between flips
	matched int
}

// New creates an Endless Memory game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("endlessmemory", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "endlessmemory" }

// Title returns the display name.
func (g *Game) Title() string { return "Endless Memory" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset deals a shuffled deck.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.deal(env)
}

func (g *Game) deal(env *core.Env) {
	g.cards = g.cards[:0]
	for v := 0; v < pairs; v++ {
		g.cards = append(g.cards, card{value: v}, card{value: v})
	}
	env.Rand.Shuffle(len(g.cards), func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})
	g.open = g.open[:0]
	g.matched = 0
}

// Update flips a random card on each Space press.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	if env.Input.Pressed(core.KeySpace) {
		g.flip(env, env.Rand.Intn(len(g.cards)))
	}
	if g.matched == len(g.cards) {
		g.deal(env)
	}
}

// flip turns card i face up. Face-up or matched cards are left alone.
func (g *Game) flip(env *core.Env, i int) {
	c := &g.cards[i]
	if c.faceUp || c.matched {
		return
	}
	c.faceUp = true
	g.open = append(g.open, i)
	env.Tone(flipFreq, flipDur)

	if len(g.open) < 2 {
		return
	}
	a, b := &g.cards[g.open[0]], &g.cards[g.open[1]]
	if a.value == b.value {
		a.matched, b.matched = true, true
		g.matched += 2
		g.score += pairScore
	} else {
		a.faceUp, b.faceUp = false, false
	}
	g.open = g.open[:0]
}

// Draw renders the deck in a 4x4 layout.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - deckCols*cardPitch) / 2
	for i, cd := range g.cards {
		x := ox + float64(i%deckCols*cardPitch)
		y := deckTop + float64(i/deckCols*cardPitch)
		switch {
		case cd.matched:
			c.Rect(x, y, cardSize, cardSize, core.ColorCyan, core.ColorCyan)
		case cd.faceUp:
			c.Rect(x, y, cardSize, cardSize, core.ColorWhite, core.ColorDefault)
			c.Text(strconv.Itoa(cd.value), x+cardSize/2, y+cardSize/2, 20)
		default:
			c.Rect(x, y, cardSize, cardSize, core.ColorMagenta, core.ColorMagenta)
		}
	}
}
