package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/protocolctl/internal/config"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Success       lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Built-in presets. Names match the theme.preset config key. "evening" keeps
// blue out of the palette for use after the shutdown ritual.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Success:       lipgloss.Color("10"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Success:       lipgloss.Color("2"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		Success:       lipgloss.Color("#50FA7B"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dark",
	},
	"morning": {
		Primary:       lipgloss.Color("#1B2631"),
		Secondary:     lipgloss.Color("#5D6D7E"),
		Accent:        lipgloss.Color("#D68910"),
		Muted:         lipgloss.Color("#85929E"),
		Danger:        lipgloss.Color("#C0392B"),
		Success:       lipgloss.Color("#1E8449"),
		Background:    lipgloss.Color("#FDFEFE"),
		MarkdownStyle: "light",
	},
	"evening": {
		Primary:       lipgloss.Color("#F5CBA7"),
		Secondary:     lipgloss.Color("#A04000"),
		Accent:        lipgloss.Color("#E67E22"),
		Muted:         lipgloss.Color("#873600"),
		Danger:        lipgloss.Color("#E74C3C"),
		Success:       lipgloss.Color("#D4AC0D"),
		Background:    lipgloss.Color("#1C0F08"),
		MarkdownStyle: "dark",
	},
}

const defaultPreset = "default-dark"

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides. Unknown presets fall back to
// default-dark.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	theme, ok := presets[cfg.Preset]
	if !ok {
		theme = presets[defaultPreset]
	}

	overrides := []struct {
		value  string
		target *lipgloss.Color
	}{
		{cfg.Primary, &theme.Primary},
		{cfg.Secondary, &theme.Secondary},
		{cfg.Accent, &theme.Accent},
		{cfg.Muted, &theme.Muted},
		{cfg.Danger, &theme.Danger},
		{cfg.Success, &theme.Success},
		{cfg.Background, &theme.Background},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.target = lipgloss.Color(o.value)
		}
	}
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}
	return theme
}

func (t Theme) style(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(t.Background)
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return t.style(t.Muted)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return t.style(t.Primary).Bold(true)
}

// AccentStyle returns a lipgloss style for accented/focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return t.style(t.Accent)
}

// DangerStyle returns a lipgloss style for warnings/delete prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return t.style(t.Danger)
}

// SuccessStyle returns a lipgloss style for completed checklist items.
func (t Theme) SuccessStyle() lipgloss.Style {
	return t.style(t.Success)
}

// MutedStyle returns a lipgloss style for secondary text such as times.
func (t Theme) MutedStyle() lipgloss.Style {
	return t.style(t.Muted)
}

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Background(t.Background).
		Foreground(t.Primary)
}

// bgEscapeCode returns the raw ANSI escape sequence to set the theme's
// background color, for use with terminal control codes like \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen pads every line to termWidth, centering content narrower than
// the terminal, and fills or truncates to termHeight. Each line ends with an
// erase-to-end-of-line in the background color.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bg := lipgloss.NewStyle().Background(t.Background)
	eol := t.bgEscapeCode() + "\x1b[K"
	spaces := func(n int) string {
		if n <= 0 {
			return ""
		}
		return bg.Render(strings.Repeat(" ", n))
	}

	left := 0
	if contentWidth > 0 && contentWidth < termWidth {
		left = (termWidth - contentWidth) / 2
	}

	lines := strings.Split(content, "\n")
	if len(lines) > termHeight {
		lines = lines[:termHeight]
	}
	for i, line := range lines {
		lines[i] = spaces(left) + line + spaces(termWidth-left-lipgloss.Width(line)) + eol
	}
	for len(lines) < termHeight {
		lines = append(lines, spaces(termWidth)+eol)
	}
	return strings.Join(lines, "\n")
}

// ClearLineEnds appends a terminal-level erase-to-end-of-line (\x1b[K) to
// every line, ensuring the theme background fills to the right terminal edge.
// Use this for output produced by lipgloss.Place or similar that may not
// extend to the full terminal width.
func (t Theme) ClearLineEnds(content string) string {
	clearEOL := t.bgEscapeCode() + "\x1b[K"
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = line + clearEOL
	}
	return strings.Join(lines, "\n")
}

// ViewPaneStyle returns a lipgloss style for content view panes with themed background.
func (t Theme) ViewPaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Background).
		Foreground(t.Primary)
}
