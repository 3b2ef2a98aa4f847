package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/metrics"
)

// DashboardConfig holds display settings for the dashboard.
type DashboardConfig struct {
	MaxWidth int
	Theme    Theme
}

type dashboardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Metrics key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Prev, k.Next, k.Metrics, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Prev, k.Next, k.Today},
		{k.Metrics, k.Refresh, k.Quit},
	}
}

var defaultDashboardKeys = dashboardKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Metrics: key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "metrics")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type dashboardView int

const (
	viewDay dashboardView = iota
	viewMetrics
)

type logsLoadedMsg struct{ logs logstore.Logs }

type dashboardErrMsg struct{ err error }

type dashboardModel struct {
	svc      *daily.Service
	cfg      DashboardConfig
	keys     dashboardKeys
	help     help.Model
	progress progress.Model
	charts   viewport.Model

	today   string
	date    string
	logs    logstore.Logs
	summary daily.Summary
	loaded  bool
	cursor  int
	view    dashboardView
	err     error

	width  int
	height int
}

func newDashboard(svc *daily.Service, cfg DashboardConfig) dashboardModel {
	today := svc.Today()
	h := help.New()
	h.Styles.ShortKey = cfg.Theme.AccentStyle()
	h.Styles.ShortDesc = cfg.Theme.HelpStyle()
	h.Styles.FullKey = cfg.Theme.AccentStyle()
	h.Styles.FullDesc = cfg.Theme.HelpStyle()

	return dashboardModel{
		svc:      svc,
		cfg:      cfg,
		keys:     defaultDashboardKeys,
		help:     h,
		progress: progress.New(progress.WithSolidFill(string(cfg.Theme.Accent)), progress.WithoutPercentage()),
		charts:   viewport.New(0, 0),
		today:    today,
		date:     today,
	}
}

// RunDashboard starts the interactive daily checklist.
func RunDashboard(svc *daily.Service, cfg DashboardConfig) error {
	p := tea.NewProgram(newDashboard(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m dashboardModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		logs, err := svc.Load()
		if err != nil {
			return dashboardErrMsg{err}
		}
		return logsLoadedMsg{logs}
	}
}

func (m dashboardModel) toggle(item dailylog.ChecklistItem) tea.Cmd {
	svc, date := m.svc, m.date
	return func() tea.Msg {
		logs, err := svc.Toggle(date, item)
		if err != nil {
			return dashboardErrMsg{err}
		}
		return logsLoadedMsg{logs}
	}
}

func (m dashboardModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

func (m *dashboardModel) resize() {
	w := m.contentWidth()
	m.help.Width = w
	m.progress.Width = max(w-20, 10)
	m.charts.Width = w
	m.charts.Height = max(m.height-4, 3)
	m.renderCharts()
}

func (m *dashboardModel) refresh() {
	s, err := daily.Summarize(m.logs, m.date)
	if err != nil {
		m.err = err
		return
	}
	m.summary = s
	m.renderCharts()
}

func (m *dashboardModel) renderCharts() {
	if !m.loaded {
		return
	}
	var b strings.Builder
	FormatJetLag(&b, metrics.SocialJetLagDetail(m.logs))
	fmt.Fprintln(&b)
	RenderCharts(&b, metrics.ProjectRows(m.logs), max(m.contentWidth()-20, 10), m.cfg.Theme)
	m.charts.SetContent(b.String())
}

func (m *dashboardModel) shiftDay(days int) {
	next, err := dailylog.ShiftDate(m.date, days)
	if err != nil || next > m.today {
		return
	}
	m.date = next
	m.refresh()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case logsLoadedMsg:
		m.logs = msg.logs
		m.loaded = true
		m.err = nil
		m.refresh()
		return m, nil

	case dashboardErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Metrics) {
			if m.view == viewDay {
				m.view = viewMetrics
			} else {
				m.view = viewDay
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.load()
		}
		if m.view == viewMetrics {
			var cmd tea.Cmd
			m.charts, cmd = m.charts.Update(msg)
			return m, cmd
		}
		return m.updateDay(msg)
	}
	return m, nil
}

func (m dashboardModel) updateDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := dailylog.Checklist()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.loaded {
			return m, m.toggle(items[m.cursor])
		}
	case key.Matches(msg, m.keys.Prev):
		m.shiftDay(-1)
	case key.Matches(msg, m.keys.Next):
		m.shiftDay(1)
	case key.Matches(msg, m.keys.Today):
		m.date = m.today
		m.refresh()
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var content string
	switch {
	case !m.loaded:
		content = "Loading..."
	case m.view == viewMetrics:
		content = m.cfg.Theme.HeaderStyle().Render("Metrics") + "\n\n" + m.charts.View()
	default:
		content = m.dayView()
	}
	if m.err != nil {
		content += "\n\n" + m.cfg.Theme.DangerStyle().Render("Error: "+m.err.Error())
	}
	content += "\n\n" + m.help.View(m.keys)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return m.cfg.Theme.PaintScreen(content, m.width, m.height, m.contentWidth())
}

func (m dashboardModel) dayView() string {
	t := m.cfg.Theme
	s := m.summary
	var b strings.Builder

	title := fmt.Sprintf("%s %s: %s", s.Weekday, s.Date, s.Plan.Name)
	if s.Date == m.today {
		title += " (today)"
	}
	b.WriteString(t.HeaderStyle().Render(title) + "\n")
	b.WriteString(t.MutedStyle().Render(s.Plan.Description) + "\n\n")

	for i, item := range dailylog.Checklist() {
		cursor := "  "
		if i == m.cursor {
			cursor = t.AccentStyle().Render("> ")
		}
		box, label := "[ ]", item.Label()
		if s.Log.Checked(item) {
			box = t.SuccessStyle().Render("[x]")
			label = t.MutedStyle().Strikethrough(true).Render(label)
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, box, t.MutedStyle().Render(item.Time()), label)
	}

	fmt.Fprintf(&b, "\nAdherence %s %3d%%\n\n", m.progress.ViewAs(float64(s.Adherence)/100), s.Adherence)
	formatDetails(&b, s.Log)

	for _, a := range Alerts(s) {
		b.WriteString("\n" + t.DangerStyle().Render(a))
	}
	return strings.TrimRight(b.String(), "\n")
}
