package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	sleepBed    string
	sleepAsleep string
	sleepWake   string
	sleepDate   string
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log last night's sleep",
	Long: `Log last night's sleep as HH:MM clock times.

The wake time feeds the social jet lag score. Flags that are not given keep
the stored value, or the 21:00 / 22:00 / 05:30 defaults.`,
	Example: `  protocolctl sleep --bed 21:00 --asleep 22:10 --wake 05:30
  protocolctl sleep --wake 07:45 --date 2026-10-18`,
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(sleepRun(os.Stdout, cmd.Flags(), sleepDate))
	},
}

func sleepRun(w io.Writer, flags *pflag.FlagSet, date string) error {
	date = resolveDate(date)
	current, _, err := svc.Resolve(date)
	if err != nil {
		return err
	}
	entry := current.SleepLog.OrElse(dailylog.DefaultSleep())

	if flags.Changed("bed") {
		entry.BedTime = sleepBed
	}
	if flags.Changed("asleep") {
		entry.SleepTime = sleepAsleep
	}
	if flags.Changed("wake") {
		entry.WakeTime = sleepWake
	}

	logs, err := svc.Update(date, logstore.FieldSleep, entry)
	if err != nil {
		return err
	}
	return reportSaved(w, logs, date, "sleep")
}

func addSleepFlags(fs *pflag.FlagSet) {
	fs.StringVar(&sleepBed, "bed", "", "time you went to bed (HH:MM)")
	fs.StringVar(&sleepAsleep, "asleep", "", "time you fell asleep (HH:MM)")
	fs.StringVar(&sleepWake, "wake", "", "time you woke up (HH:MM)")
}

func init() {
	addSleepFlags(sleepCmd.Flags())
	sleepCmd.Flags().StringVar(&sleepDate, "date", "", "day to update (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(sleepCmd)
}
