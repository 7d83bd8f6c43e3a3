// Package session drives one player's arcade: it owns the switchboard of
// game instances, routes keys and the primary action, runs the per-frame
// update/draw cycle and pushes HUD state.
package session

import (
	"sort"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Switchboard holds one instance of every game a session can switch to
// and remembers the active one.
type Switchboard struct {
	games   map[string]registry.Game
	current registry.Game
}

// NewSwitchboard creates a switchboard over the given instances.
// Later instances with a duplicate id replace earlier ones.
func NewSwitchboard(games ...registry.Game) *Switchboard {
	b := &Switchboard{games: make(map[string]registry.Game, len(games))}
	for _, g := range games {
		b.games[g.ID()] = g
	}
	return b
}

// Build instantiates every registered game with cfg.
func Build(cfg config.Config) *Switchboard {
	infos := registry.List()
	games := make([]registry.Game, 0, len(infos))
	for _, info := range infos {
		g, err := registry.Create(info.ID, cfg)
		if err != nil {
			continue
		}
		games = append(games, g)
	}
	return NewSwitchboard(games...)
}

// IDs returns the ids of all instances, sorted.
func (b *Switchboard) IDs() []string {
	ids := make([]string, 0, len(b.games))
	for id := range b.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the instance for id.
func (b *Switchboard) Get(id string) (registry.Game, bool) {
	g, ok := b.games[id]
	return g, ok
}

// Current returns the active instance, or nil before the first switch.
func (b *Switchboard) Current() registry.Game {
	return b.current
}

// Len returns the number of instances.
func (b *Switchboard) Len() int {
	return len(b.games)
}
