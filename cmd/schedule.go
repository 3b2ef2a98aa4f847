package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/schedule"
	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the weekly training plan and activity catalog",
	Example: `  protocolctl schedule
  protocolctl schedule --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(scheduleRun(os.Stdout))
	},
}

func scheduleRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, ui.ScheduleResult{
			Week:               schedule.Week(),
			Activities:         schedule.Activities(),
			HighImpactActivity: schedule.HighImpactActivity,
		})
	}
	today, err := dailylog.ParseDate(svc.Today())
	if err != nil {
		return err
	}
	ui.FormatSchedule(w, schedule.Week(), schedule.Activities(), today.Weekday())
	return nil
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
