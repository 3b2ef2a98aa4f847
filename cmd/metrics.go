package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/spf13/cobra"
)

var metricsChart bool

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show social jet lag, adherence history and trends",
	Example: `  protocolctl metrics
  protocolctl metrics --chart
  protocolctl metrics --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(metricsRun(os.Stdout, metricsChart))
	},
}

func metricsRun(w io.Writer, chart bool) error {
	logs, err := svc.Load()
	if err != nil {
		return err
	}
	rows := metrics.ProjectRows(logs)
	result := ui.MetricsResult{
		SocialJetLag:  metrics.SocialJetLagDetail(logs),
		MeanAdherence: metrics.MeanAdherence(rows),
		Streak:        metrics.Streak(logs, svc.Today()),
		Rows:          rows,
	}

	if jsonOutput {
		return ui.FormatJSON(w, result)
	}

	var buf bytes.Buffer
	ui.FormatJetLag(&buf, result.SocialJetLag)
	fmt.Fprintf(&buf, "Mean adherence: %.0f%%\n", result.MeanAdherence)
	fmt.Fprintf(&buf, "Logging streak: %d days\n\n", result.Streak)
	if chart {
		theme := ui.ResolveTheme(appConfig.Theme)
		ui.RenderCharts(&buf, rows, max(appConfig.MaxWidth-20, 10), theme)
	} else {
		ui.FormatRows(&buf, rows)
	}
	return ui.OutputOrPage(w, buf.String(), ui.ResolveTheme(appConfig.Theme), appConfig.MaxWidth)
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsChart, "chart", false, "draw text charts instead of the table")
	rootCmd.AddCommand(metricsCmd)
}
