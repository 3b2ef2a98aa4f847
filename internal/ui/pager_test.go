package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/protocolctl/internal/config"
)

func sizedPager(t *testing.T, m pagerModel, w, h int) pagerModel {
	t.Helper()
	sized, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return sized.(pagerModel)
}

func TestPagerViewFillsScreen(t *testing.T) {
	m := sizedPager(t, pagerModel{
		content: "Line 1\nLine 2\nLine 3",
		theme:   ResolveTheme(config.ThemeConfig{Preset: "default-dark"}),
	}, 80, 24)

	lines := strings.Split(stripANSI(m.View()), "\n")
	if len(lines) != 24 {
		t.Errorf("expected 24 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) < 80 {
			t.Errorf("line %d: expected min width 80, got %d", i, len(line))
		}
	}
}

func TestPagerRespectsMaxWidth(t *testing.T) {
	m := sizedPager(t, pagerModel{
		content:  "Some content to display in the pager",
		maxWidth: 60,
		theme:    ResolveTheme(config.ThemeConfig{Preset: "dracula"}),
	}, 100, 30)

	if m.viewport.Width != 60 {
		t.Errorf("expected viewport width 60, got %d", m.viewport.Width)
	}
	if m.viewport.Height != 29 {
		t.Errorf("expected viewport height 29, got %d", m.viewport.Height)
	}

	m = sizedPager(t, m, 50, 20)
	if m.viewport.Width != 50 {
		t.Errorf("expected viewport to shrink to 50, got %d", m.viewport.Width)
	}
}

func TestPagerQuitKeys(t *testing.T) {
	m := pagerModel{theme: ResolveTheme(config.ThemeConfig{})}
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("expected quit command for %q", key.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg for %q", key.String())
		}
	}
}

func TestPagerNotReady(t *testing.T) {
	if got := (pagerModel{}).View(); got != "Loading..." {
		t.Errorf("expected loading view, got %q", got)
	}
}

func TestOutputOrPageWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputOrPage(&buf, "report\n", Theme{}, 80); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "report\n" {
		t.Errorf("expected direct write, got %q", buf.String())
	}
}
