package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/storage"
	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/spf13/cobra"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete one day's log",
	Long:  "Permanently delete the log for a date. Requires confirmation unless --force is used.",
	Example: `  protocolctl delete 2026-10-18
  protocolctl delete 2026-10-18 --force`,
	Args:     cobra.ExactArgs(1),
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := func(prompt, detail string) (bool, error) {
			return ui.Confirm(prompt, detail, ui.ResolveTheme(appConfig.Theme))
		}
		if forceDelete {
			confirm = nil
		}
		return exitOnError(deleteRun(os.Stdout, args[0], confirm))
	},
}

// deleteRun removes the log for date. A nil confirm deletes without asking.
func deleteRun(w io.Writer, date string, confirm func(prompt, detail string) (bool, error)) error {
	if _, err := dailylog.ParseDate(date); err != nil {
		return err
	}
	logs, err := svc.Load()
	if err != nil {
		return err
	}
	l, ok := logs.Get(date)
	if !ok {
		return fmt.Errorf("log for %s: %w", date, storage.ErrNotFound)
	}

	if confirm != nil {
		detail := fmt.Sprintf("%s: %d/%d checklist items done", date, l.CheckedCount(), len(dailylog.Checklist()))
		confirmed, err := confirm("Delete this log? This cannot be undone.", detail)
		if err != nil {
			return fmt.Errorf("%w: %v", storage.ErrStorage, err)
		}
		if !confirmed {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if _, err := svc.Delete(date); err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.DeleteResult{Date: date, Deleted: true})
	}
	ui.FormatDeleted(w, date)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
