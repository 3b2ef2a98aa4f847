package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/protocolctl/internal/config"
)

func TestConfirmModelKeys(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m := confirmModel{prompt: "Delete?"}
			next, cmd := m.Update(tt.key)
			got := next.(confirmModel)
			if !got.done {
				t.Fatal("expected prompt to finish")
			}
			if got.confirmed != tt.want {
				t.Errorf("confirmed = %v, want %v", got.confirmed, tt.want)
			}
			if cmd == nil {
				t.Error("expected quit command")
			}
		})
	}
}

func TestConfirmModelIgnoresOtherKeys(t *testing.T) {
	m := confirmModel{prompt: "Delete?"}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if next.(confirmModel).done || cmd != nil {
		t.Error("expected unrelated key to be ignored")
	}
}

func TestConfirmModelView(t *testing.T) {
	m := confirmModel{
		prompt: "Delete log for 2026-10-19?",
		detail: "2 of 6 items checked",
		theme:  ResolveTheme(config.ThemeConfig{}),
	}
	view := stripANSI(m.View())
	for _, want := range []string{"2 of 6 items checked", "Delete log for 2026-10-19?", "[y/N]"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got %q", want, view)
		}
	}
	m.done = true
	if m.View() != "" {
		t.Error("expected empty view once answered")
	}
}
