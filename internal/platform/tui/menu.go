package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menuItem is one selectable game.
type menuItem struct {
	id    string
	title string
}

// menu is the game picker. It is the only place a game switch starts.
type menu struct {
	items  []menuItem
	cursor int
	err    string // last switch error, shown inline
}

func newMenu(board *session.Switchboard) menu {
	ids := board.IDs()
	items := make([]menuItem, 0, len(ids))
	for _, id := range ids {
		g, _ := board.Get(id)
		items = append(items, menuItem{id: id, title: g.Title()})
	}
	return menu{items: items}
}

func (m *menu) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = core.Clamp(m.cursor+delta, 0, len(m.items)-1)
}

// focus puts the cursor on id when it is listed.
func (m *menu) focus(id string) {
	for i, it := range m.items {
		if it.id == id {
			m.cursor = i
			return
		}
	}
}

func (m menu) selected() (string, bool) {
	if len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor].id, true
}

// visibleRange returns the slice of items that fits rows lines, keeping
// the cursor on screen.
func (m menu) visibleRange(rows int) (int, int) {
	if rows <= 0 || rows >= len(m.items) {
		return 0, len(m.items)
	}
	start := max(m.cursor-rows/2, 0)
	end := start + rows
	if end > len(m.items) {
		end = len(m.items)
		start = end - rows
	}
	return start, end
}

func (m menu) view(width, height int, bests core.BestStore) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("N E O N   A R C A D E"), width))
	b.WriteString("\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Select a game"), width))
	b.WriteString("\n\n")

	start, end := m.visibleRange(height - 8)
	for i := start; i < end; i++ {
		item := m.items[i]
		best := ""
		if bests != nil {
			best = fmt.Sprintf("best %d", bests.Best(registry.BestKey(item.id)))
		}
		line := fmt.Sprintf("  %-22s %10s", item.title, best)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-22s %10s", item.title, best))
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrorStyle.Render(m.err), width))
		b.WriteString("\n")
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
