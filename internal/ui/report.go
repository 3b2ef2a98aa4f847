package ui

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/schedule"
)

// reportDays caps the history table so the report stays readable.
const reportDays = 14

// BuildReport assembles a markdown report of today and recent history.
func BuildReport(logs logstore.Logs, today string) (string, error) {
	s, err := daily.Summarize(logs, today)
	if err != nil {
		return "", err
	}
	rows := metrics.ProjectRows(logs)
	jl := metrics.SocialJetLagDetail(logs)

	var b strings.Builder
	fmt.Fprintf(&b, "# Protocol report: %s\n\n", today)

	fmt.Fprintf(&b, "## %s: %s\n\n%s\n\n", s.Weekday, s.Plan.Name, s.Plan.Description)
	for _, a := range Alerts(s) {
		fmt.Fprintf(&b, "> %s\n\n", a)
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Adherence today:** %d%% (%d/%d)\n", s.Adherence, s.Checked, s.Total)
	fmt.Fprintf(&b, "- **Mean adherence:** %.0f%% over %d days\n", metrics.MeanAdherence(rows), len(rows))
	fmt.Fprintf(&b, "- **Logging streak:** %d days\n", metrics.Streak(logs, today))
	fmt.Fprintf(&b, "- **Social jet lag:** %.1f min\n\n", jl.Minutes)

	b.WriteString("## Recent days\n\n")
	if len(rows) == 0 {
		b.WriteString("_No logs recorded yet._\n\n")
	} else {
		if len(rows) > reportDays {
			rows = rows[len(rows)-reportDays:]
		}
		b.WriteString("| Day | Adherence | Knee | Fatigue | Focus | Clarity | Energy | Wake |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|---:|---:|\n")
		for _, r := range rows {
			wake := "-"
			if h, ok := r.WakeHour.Get(); ok {
				wake = formatHour(h)
			}
			fmt.Fprintf(&b, "| %s | %d%% | %s | %s | %s | %s | %s | %s |\n",
				r.Label, r.Adherence,
				cell(r.KneePain.Get()), cell(r.GeneralFatigue.Get()),
				cell(r.Focus.Get()), cell(r.Clarity.Get()), cell(r.Energy.Get()),
				wake,
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Week\n\n")
	for _, p := range schedule.Week() {
		fmt.Fprintf(&b, "- **%s:** %s\n", p.Day, p.Name)
	}

	return b.String(), nil
}
