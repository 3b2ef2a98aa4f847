package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/opt"
)

// Point is one plotted value.
type Point struct {
	Label string
	Value float64
}

// Series is one text chart. Days without a value for the metric have no
// point, so gaps are skipped rather than drawn as zero.
type Series struct {
	Title  string
	Max    float64
	Points []Point
	Format func(float64) string
}

func intSeries(title string, top float64, rows []metrics.Row, get func(metrics.Row) opt.Value[int]) Series {
	s := Series{Title: title, Max: top, Format: func(v float64) string { return fmt.Sprintf("%.0f", v) }}
	for _, r := range rows {
		if v, ok := get(r).Get(); ok {
			s.Points = append(s.Points, Point{Label: r.Label, Value: float64(v)})
		}
	}
	return s
}

// ChartSeries builds the dashboard charts from projected rows.
func ChartSeries(rows []metrics.Row) []Series {
	wake := Series{Title: "Wake time", Max: 12, Format: formatHour}
	for _, r := range rows {
		if h, ok := r.WakeHour.Get(); ok {
			wake.Points = append(wake.Points, Point{Label: r.Label, Value: h})
		}
	}

	return []Series{
		intSeries("Adherence %", 100, rows, func(r metrics.Row) opt.Value[int] { return opt.Some(r.Adherence) }),
		intSeries("Knee pain", 10, rows, func(r metrics.Row) opt.Value[int] { return r.KneePain }),
		intSeries("General fatigue", 10, rows, func(r metrics.Row) opt.Value[int] { return r.GeneralFatigue }),
		intSeries("Focus", 10, rows, func(r metrics.Row) opt.Value[int] { return r.Focus }),
		intSeries("Clarity", 10, rows, func(r metrics.Row) opt.Value[int] { return r.Clarity }),
		intSeries("Energy", 10, rows, func(r metrics.Row) opt.Value[int] { return r.Energy }),
		wake,
	}
}

// formatHour renders fractional hours as HH:MM.
func formatHour(h float64) string {
	mins := int(math.Round(h * 60))
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// RenderChart draws s as horizontal bars of at most width cells.
func RenderChart(w io.Writer, s Series, width int, bar lipgloss.Style) {
	fmt.Fprintln(w, s.Title)
	if len(s.Points) == 0 {
		fmt.Fprintln(w, "  (no data)")
		return
	}
	if width < 1 {
		width = 20
	}
	for _, p := range s.Points {
		n := 0
		if s.Max > 0 {
			n = int(math.Round(p.Value / s.Max * float64(width)))
		}
		n = min(max(n, 0), width)
		fmt.Fprintf(w, "  %s %s%s %s\n",
			p.Label,
			bar.Render(strings.Repeat("█", n)),
			strings.Repeat("·", width-n),
			s.Format(p.Value),
		)
	}
}

// RenderCharts draws every series separated by blank lines.
func RenderCharts(w io.Writer, rows []metrics.Row, width int, theme Theme) {
	bar := lipgloss.NewStyle().Foreground(theme.Accent)
	for i, s := range ChartSeries(rows) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		RenderChart(w, s, width, bar)
	}
}
