package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/schedule"
)

// Alerts shown next to the training log.
const (
	HighImpactAlert = "Alerta: Corrida é um exercício de alto impacto. Monitore a dor no joelho."
	KneePainAlert   = "Alerta: Dor no joelho > 3 por dias consecutivos. Considere substituição estratégica."
)

// Alerts returns the alerts that apply to a day, most severe last.
func Alerts(s daily.Summary) []string {
	var out []string
	if s.HighImpact {
		out = append(out, HighImpactAlert)
	}
	if s.KneePainWarning {
		out = append(out, KneePainAlert)
	}
	return out
}

// FormatSummary writes the plain-text view of one day.
func FormatSummary(w io.Writer, s daily.Summary) {
	fmt.Fprintf(w, "%s %s: %s\n", s.Weekday, s.Date, s.Plan.Name)
	fmt.Fprintf(w, "  %s\n\n", s.Plan.Description)

	for _, item := range dailylog.Checklist() {
		mark := " "
		if s.Log.Checked(item) {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s  %-24s (%s)\n", mark, item.Time(), item.Label(), item.Key())
	}
	if s.Log.TyrosineBreakfastNotes != "" {
		fmt.Fprintf(w, "    notes: %s\n", s.Log.TyrosineBreakfastNotes)
	}
	fmt.Fprintf(w, "\nAdherence: %d%% (%d/%d)\n", s.Adherence, s.Checked, s.Total)

	fmt.Fprintln(w)
	formatDetails(w, s.Log)

	if alerts := Alerts(s); len(alerts) > 0 {
		fmt.Fprintln(w)
		for _, a := range alerts {
			fmt.Fprintf(w, "! %s\n", a)
		}
	}
}

func formatDetails(w io.Writer, l dailylog.DailyLog) {
	if e, ok := l.TrainingLog.Get(); ok {
		sweat := "no"
		if e.SweatSatisfied {
			sweat = "yes"
		}
		fmt.Fprintf(w, "Training:  %s, %d min, RPE %d, knee pain %d, fatigue %d, sweat %s\n",
			e.Type, e.Duration, e.RPE, e.KneePain, e.GeneralFatigue, sweat)
	} else {
		fmt.Fprintln(w, "Training:  not logged")
	}
	if e, ok := l.SleepLog.Get(); ok {
		fmt.Fprintf(w, "Sleep:     bed %s, asleep %s, wake %s\n", e.BedTime, e.SleepTime, e.WakeTime)
	} else {
		fmt.Fprintln(w, "Sleep:     not logged")
	}
	if m, ok := l.CognitiveMetrics.Get(); ok {
		fmt.Fprintf(w, "Cognitive: focus %d, clarity %d, energy %d\n", m.FocusLevel, m.MentalFog, m.EnergyLevel)
	} else {
		fmt.Fprintln(w, "Cognitive: not logged")
	}
}

// FormatSaved formats a save confirmation message.
func FormatSaved(w io.Writer, date, what string) {
	fmt.Fprintf(w, "Saved %s for %s.\n", what, date)
}

// FormatDeleted formats a deletion confirmation message.
func FormatDeleted(w io.Writer, date string) {
	fmt.Fprintf(w, "Deleted log for %s.\n", date)
}

// FormatJetLag writes the social jet lag score and its buckets.
func FormatJetLag(w io.Writer, jl metrics.JetLag) {
	fmt.Fprintf(w, "Social jet lag: %.1f min\n", jl.Minutes)
	fmt.Fprintf(w, "  weekday wake: %s (%d days)\n", formatMean(jl.WeekdayMean.Get()), jl.WeekdayCount)
	fmt.Fprintf(w, "  weekend wake: %s (%d days)\n", formatMean(jl.WeekendMean.Get()), jl.WeekendCount)
}

func formatMean(minutes float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return formatHour(minutes / 60)
}

// FormatRows writes chart rows as a table, "-" marking absent values.
func FormatRows(w io.Writer, rows []metrics.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No logs recorded yet.")
		return
	}
	fmt.Fprintf(w, "%-5s  %4s  %4s  %4s  %4s  %4s  %4s  %5s\n",
		"DAY", "ADH", "KNEE", "FATG", "FOC", "CLR", "NRG", "WAKE")
	for _, r := range rows {
		wake := "-"
		if h, ok := r.WakeHour.Get(); ok {
			wake = formatHour(h)
		}
		fmt.Fprintf(w, "%-5s  %3d%%  %4s  %4s  %4s  %4s  %4s  %5s\n",
			r.Label, r.Adherence,
			cell(r.KneePain.Get()), cell(r.GeneralFatigue.Get()),
			cell(r.Focus.Get()), cell(r.Clarity.Get()), cell(r.Energy.Get()),
			wake,
		)
	}
}

func cell(v int, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

// FormatSchedule writes the weekly plan, marking today, and the activity
// catalog.
func FormatSchedule(w io.Writer, week []schedule.Plan, activities []string, today time.Weekday) {
	for _, p := range week {
		marker := "  "
		if p.Day == today {
			marker = "> "
		}
		fmt.Fprintf(w, "%s%-9s  %s\n", marker, p.Day, p.Name)
		fmt.Fprintf(w, "             %s\n", p.Description)
	}
	fmt.Fprintln(w)
	names := make([]string, len(activities))
	for i, a := range activities {
		names[i] = a
		if metrics.IsHighImpact(a) {
			names[i] = a + " (high impact)"
		}
	}
	fmt.Fprintf(w, "Activities: %s\n", strings.Join(names, ", "))
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MetricsResult is the JSON representation of the metrics view.
type MetricsResult struct {
	SocialJetLag  metrics.JetLag `json:"socialJetLag"`
	MeanAdherence float64        `json:"meanAdherence"`
	Streak        int            `json:"streak"`
	Rows          []metrics.Row  `json:"rows"`
}

// ScheduleResult is the JSON representation of the schedule view.
type ScheduleResult struct {
	Week               []schedule.Plan `json:"week"`
	Activities         []string        `json:"activities"`
	HighImpactActivity string          `json:"highImpactActivity"`
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	Date    string `json:"date"`
	Deleted bool   `json:"deleted"`
}
