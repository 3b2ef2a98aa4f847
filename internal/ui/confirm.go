package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "ctrl+c"), key.WithHelp("n", "no"))
)

type confirmModel struct {
	prompt    string
	detail    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, confirmYes):
			m.confirmed, m.done = true, true
			return m, tea.Quit
		case key.Matches(msg, confirmNo):
			m.confirmed, m.done = false, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	s := ""
	if m.detail != "" {
		s = m.theme.MutedStyle().Render(m.detail) + "\n"
	}
	return s + fmt.Sprintf("%s %s ",
		m.theme.HeaderStyle().Render(m.prompt),
		m.theme.DangerStyle().Render("[y/N]"),
	)
}

// Confirm shows an interactive yes/no prompt on the terminal. detail, when
// non-empty, is shown above the prompt. Anything but "y" declines.
func Confirm(prompt, detail string, theme Theme) (bool, error) {
	return confirmWith(prompt, detail, theme)
}

func confirmWith(prompt, detail string, theme Theme, opts ...tea.ProgramOption) (bool, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, detail: detail, theme: theme}, opts...)
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}

// ConfirmFrom is Confirm reading keys from in and drawing to out.
func ConfirmFrom(in io.Reader, out io.Writer, prompt, detail string, theme Theme) (bool, error) {
	return confirmWith(prompt, detail, theme, tea.WithInput(in), tea.WithOutput(out))
}
