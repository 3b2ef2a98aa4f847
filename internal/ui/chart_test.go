package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/protocolctl/internal/config"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/opt"
)

func chartRows() []metrics.Row {
	return []metrics.Row{
		{Date: "2026-10-18", Label: "18/10", Adherence: 50, KneePain: opt.Some(0), WakeHour: opt.Some(7.5)},
		{Date: "2026-10-19", Label: "19/10", Adherence: 100, Focus: opt.Some(8)},
	}
}

func TestChartSeriesSkipsAbsentValues(t *testing.T) {
	series := ChartSeries(chartRows())
	byTitle := map[string]Series{}
	for _, s := range series {
		byTitle[s.Title] = s
	}

	if got := len(byTitle["Adherence %"].Points); got != 2 {
		t.Errorf("adherence: expected 2 points, got %d", got)
	}
	knee := byTitle["Knee pain"].Points
	if len(knee) != 1 || knee[0].Label != "18/10" || knee[0].Value != 0 {
		t.Errorf("knee pain: expected one recorded zero on 18/10, got %+v", knee)
	}
	if got := len(byTitle["Energy"].Points); got != 0 {
		t.Errorf("energy: expected no points, got %d", got)
	}
	focus := byTitle["Focus"].Points
	if len(focus) != 1 || focus[0].Label != "19/10" {
		t.Errorf("focus: expected one point on 19/10, got %+v", focus)
	}
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	s := Series{
		Title:  "Adherence %",
		Max:    100,
		Points: []Point{{Label: "18/10", Value: 50}, {Label: "19/10", Value: 100}},
		Format: func(v float64) string { return "v" },
	}
	RenderChart(&buf, s, 10, lipgloss.NewStyle())

	lines := strings.Split(strings.TrimRight(stripANSI(buf.String()), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title plus 2 bars, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[1] != "  18/10 █████····· v" {
		t.Errorf("unexpected half bar %q", lines[1])
	}
	if lines[2] != "  19/10 ██████████ v" {
		t.Errorf("unexpected full bar %q", lines[2])
	}
}

func TestRenderChartNoData(t *testing.T) {
	var buf bytes.Buffer
	RenderChart(&buf, Series{Title: "Energy"}, 10, lipgloss.NewStyle())
	if !strings.Contains(buf.String(), "(no data)") {
		t.Errorf("expected no-data marker, got %q", buf.String())
	}
}

func TestRenderChartsWakeTimeFormat(t *testing.T) {
	var buf bytes.Buffer
	RenderCharts(&buf, chartRows(), 12, ResolveTheme(config.ThemeConfig{}))
	out := stripANSI(buf.String())
	if !strings.Contains(out, "07:30") {
		t.Errorf("expected wake time rendered as 07:30, got:\n%s", out)
	}
	for _, title := range []string{"Adherence %", "Knee pain", "General fatigue", "Focus", "Clarity", "Energy", "Wake time"} {
		if !strings.Contains(out, title) {
			t.Errorf("missing chart %q", title)
		}
	}
}

func TestFormatHour(t *testing.T) {
	cases := map[float64]string{5.5: "05:30", 0: "00:00", 23.0 + 59.0/60: "23:59"}
	for in, want := range cases {
		if got := formatHour(in); got != want {
			t.Errorf("formatHour(%v) = %q, want %q", in, got, want)
		}
	}
}
