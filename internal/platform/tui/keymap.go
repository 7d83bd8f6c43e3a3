package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to arcade keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys map[string]core.Key
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: map[string]core.Key{
		"up":    core.KeyUp,
		"down":  core.KeyDown,
		"left":  core.KeyLeft,
		"right": core.KeyRight,
		"w":     core.KeyW,
		"a":     core.KeyA,
		"s":     core.KeyS,
		"d":     core.KeyD,
		" ":     core.KeySpace,
		"x":     core.KeyX,
		"p":     core.KeyP,
		"r":     core.KeyR,
	}}
}

// MapKey returns the arcade key for msg, if it has one.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	k, ok := km.keys[msg.String()]
	return k, ok
}

// GameKeyMap is the help line shown under a running game.
type GameKeyMap struct {
	Move    key.Binding
	Action  key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Menu    key.Binding
	Shot    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Action, k.Fire, k.Pause, k.Restart, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Action, k.Fire},
		{k.Pause, k.Restart, k.Menu, k.Shot, k.Quit},
	}
}

// DefaultGameKeyMap returns the in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Action: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "action"),
		),
		Fire: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "fire/place"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
