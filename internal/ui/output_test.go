package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/opt"
	"github.com/chris-regnier/protocolctl/internal/schedule"
)

func runLog(date string, pain int) dailylog.DailyLog {
	l := dailylog.New(date)
	e := dailylog.DefaultTraining()
	e.Type = schedule.HighImpactActivity
	e.KneePain = pain
	l.TrainingLog = opt.Some(e)
	return l
}

func TestFormatSummary(t *testing.T) {
	logs := logstore.Logs{}.
		With(runLog("2026-10-17", 4)).
		With(runLog("2026-10-18", 5)).
		With(runLog("2026-10-19", 6).WithCheck(dailylog.WakeUp, true))
	s, err := daily.Summarize(logs, "2026-10-19")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	FormatSummary(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"Monday 2026-10-19: Força A (Inferior)",
		"[x] 05:30  Despertar",
		"[ ] 05:30  Terapia de Luz",
		"Adherence: 17% (1/6)",
		"Training:  Corrida, 45 min",
		"Sleep:     not logged",
		HighImpactAlert,
		KneePainAlert,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatSummaryNoAlerts(t *testing.T) {
	s, err := daily.Summarize(logstore.Logs{}, "2026-10-19")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	FormatSummary(&buf, s)
	if strings.Contains(buf.String(), "Alerta") {
		t.Errorf("expected no alerts, got:\n%s", buf.String())
	}
}

func TestFormatRows(t *testing.T) {
	var buf bytes.Buffer
	FormatRows(&buf, []metrics.Row{
		{Label: "19/10", Adherence: 83, KneePain: opt.Some(0), WakeHour: opt.Some(5.5)},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got:\n%s", buf.String())
	}
	fields := strings.Fields(lines[1])
	want := []string{"19/10", "83%", "0", "-", "-", "-", "-", "05:30"}
	if strings.Join(fields, " ") != strings.Join(want, " ") {
		t.Errorf("row = %v, want %v", fields, want)
	}

	buf.Reset()
	FormatRows(&buf, nil)
	if !strings.Contains(buf.String(), "No logs") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestFormatJetLag(t *testing.T) {
	var buf bytes.Buffer
	FormatJetLag(&buf, metrics.JetLag{
		Minutes:      120,
		WeekdayMean:  opt.Some(330.0),
		WeekdayCount: 5,
	})
	out := buf.String()
	for _, want := range []string{"120.0 min", "05:30 (5 days)", "n/a (0 days)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	var buf bytes.Buffer
	FormatSchedule(&buf, schedule.Week(), schedule.Activities(), time.Monday)
	out := buf.String()
	if !strings.Contains(out, "> Monday") {
		t.Errorf("expected Monday marked as today, got:\n%s", out)
	}
	if !strings.Contains(out, "Corrida (high impact)") {
		t.Errorf("expected high impact marker, got:\n%s", out)
	}
}

func TestMetricsResultJSONKeepsNulls(t *testing.T) {
	var buf bytes.Buffer
	err := FormatJSON(&buf, MetricsResult{
		Rows: []metrics.Row{{Date: "2026-10-19", Label: "19/10", Adherence: 0}},
	})
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	row := decoded["rows"].([]any)[0].(map[string]any)
	if v, ok := row["kneePain"]; !ok || v != nil {
		t.Errorf("expected kneePain null, got %v (present=%v)", v, ok)
	}
	if row["adherence"] != float64(0) {
		t.Errorf("expected adherence 0, got %v", row["adherence"])
	}
}

func TestBuildReport(t *testing.T) {
	logs := logstore.Logs{}.
		With(runLog("2026-10-18", 1)).
		With(dailylog.New("2026-10-19").WithCheck(dailylog.Mindfulness, true))

	md, err := BuildReport(logs, "2026-10-19")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# Protocol report: 2026-10-19",
		"## Monday: Força A (Inferior)",
		"**Adherence today:** 17% (1/6)",
		"**Logging streak:** 2 days",
		"| 18/10 | 0% | 1 | 2 | - | - | - | - |",
		"**Sunday:** Recuperação Ativa",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected report to contain %q, got:\n%s", want, md)
		}
	}

	if _, err := BuildReport(logs, "not-a-date"); err == nil {
		t.Error("expected error for invalid date")
	}
}
