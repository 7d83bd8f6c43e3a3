package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

var (
	hudTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

var hudStatusStyles = map[core.Status]lipgloss.Style{
	core.StatusIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.StatusRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("121")),
	core.StatusPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	core.StatusOver:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),
}

// HUD keeps the overlay values the session pushes.
type HUD struct {
	score  int
	best   int
	status core.Status
}

// Score records the current score and best.
func (h *HUD) Score(score, best int) {
	h.score = score
	h.best = best
}

// Status records the session state.
func (h *HUD) Status(status core.Status) {
	h.status = status
}

// View renders the HUD line for the given title.
func (h *HUD) View(title string) string {
	status := hudStatusStyles[h.status].Render(h.status.String())
	if h.status == core.StatusOver {
		status += hudValueStyle.Render("  space/r: play again")
	}
	return fmt.Sprintf("%s  Score %s  Best %s  %s",
		hudTitleStyle.Render(title),
		hudValueStyle.Render(fmt.Sprint(h.score)),
		hudValueStyle.Render(fmt.Sprint(h.best)),
		status,
	)
}
