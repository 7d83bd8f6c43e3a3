package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := newHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	if !h.Press(core.KeyLeft, t0) {
		t.Fatal("first press should report a new hold")
	}
	if h.Press(core.KeyLeft, t0.Add(80*time.Millisecond)) {
		t.Error("key repeat should only refresh the hold")
	}
	if got := h.Expire(t0.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v before the refreshed hold ran out", got)
	}
	got := h.Expire(t0.Add(180 * time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyLeft {
		t.Errorf("released %v, expected [%s]", got, core.KeyLeft)
	}
	if !h.Press(core.KeyLeft, t0.Add(200*time.Millisecond)) {
		t.Error("a press after release should be new")
	}
}

func TestHoldTrackerDefault(t *testing.T) {
	h := newHoldTracker(0)
	if h.hold <= 0 {
		t.Error("a non-positive hold should fall back to a default")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.KeyA, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.KeySpace, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.KeyX, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, "", false},
	}
	for _, tc := range tests {
		got, ok := km.MapKey(tc.msg)
		if ok != tc.ok || got != tc.want {
			t.Errorf("MapKey(%q) = %q, %v; expected %q, %v", tc.msg.String(), got, ok, tc.want, tc.ok)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "AB", core.ColorCyan)
	s.DrawText(2, 0, "CD", core.ColorMagenta)
	out := RenderScreen(s)
	for _, want := range []string{"AB", "CD"} {
		if !containsPlain(out, want) {
			t.Errorf("rendered %q, missing %q", out, want)
		}
	}
}

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func containsPlain(s, sub string) bool {
	return strings.Contains(ansiSeq.ReplaceAllString(s, ""), sub)
}
