package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's checklist, plan and warnings",
	Long: `Show the checklist, training plan, adherence and warnings for a day.

Viewing a day never creates a log for it; a day without a stored log is
shown as an untouched checklist.`,
	Example: `  protocolctl today
  protocolctl today --date 2026-10-18
  protocolctl today --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(todayRun(os.Stdout, todayDate))
	},
}

func todayRun(w io.Writer, date string) error {
	if date == "" {
		date = svc.Today()
	}
	s, err := svc.Summarize(date)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, s)
	}

	var buf bytes.Buffer
	ui.FormatSummary(&buf, s)
	return ui.OutputOrPage(w, buf.String(), ui.ResolveTheme(appConfig.Theme), appConfig.MaxWidth)
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "day to show (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(todayCmd)
}
