package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/spf13/cobra"
)

var (
	checkOff   bool
	checkNotes string
	checkDate  string
)

var checkCmd = &cobra.Command{
	Use:   "check <item>",
	Short: "Mark a checklist item done (or not done)",
	Long: `Mark one of the daily checklist items as done.

Items: wake-up, light-therapy, breakfast, mindfulness, shutdown, sleep-time.
Notes can only be attached to the breakfast item.`,
	Example: `  protocolctl check wake-up
  protocolctl check breakfast --notes "ovos, queijo"
  protocolctl check mindfulness --off --date 2026-10-18`,
	Args:     cobra.ExactArgs(1),
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		var notes *string
		if cmd.Flags().Changed("notes") {
			notes = &checkNotes
		}
		return exitOnError(checkRun(os.Stdout, args[0], !checkOff, notes, checkDate))
	},
}

func checkRun(w io.Writer, key string, done bool, notes *string, date string) error {
	item, err := dailylog.ParseChecklistItem(key)
	if err != nil {
		return err
	}
	if notes != nil && item != dailylog.Breakfast {
		return fmt.Errorf("%w: notes can only be set on the breakfast item", dailylog.ErrInvalid)
	}
	date = resolveDate(date)

	if notes != nil {
		if _, err := svc.Update(date, logstore.FieldBreakfastNotes, *notes); err != nil {
			return err
		}
	}
	logs, err := svc.SetCheck(date, item, done)
	if err != nil {
		return err
	}
	return reportSaved(w, logs, date, item.Label())
}

func init() {
	checkCmd.Flags().BoolVar(&checkOff, "off", false, "mark the item as not done")
	checkCmd.Flags().StringVar(&checkNotes, "notes", "", "breakfast notes")
	checkCmd.Flags().StringVar(&checkDate, "date", "", "day to update (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(checkCmd)
}
