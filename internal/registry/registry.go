// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// ErrUnknownGame is returned when an id has no registered factory.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract every arcade variant implements.
// Games hold pure state; the session drives them and the platform draws
// whatever they emit on env.Canvas.
type Game interface {
	// ID returns a unique identifier (e.g. "snake", "tetris").
	// Used for CLI commands, best-score keys and history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset zeroes the score and re-initializes every entity.
	Reset(env *core.Env)

	// Update advances the simulation by dt seconds. It must do nothing
	// while env.Paused().
	Update(env *core.Env, dt float64)

	// Draw emits the current state on env.Canvas without mutating it.
	Draw(env *core.Env)

	// Score returns the current score.
	Score() int
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(cfg config.Config) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// BestKey returns the persistent best-score key for a game id.
func BestKey(id string) string {
	return "best_" + id
}

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(config.Default()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Unknown ids return an error wrapping ErrUnknownGame.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a factory. Tests only.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(titles, id)
}
