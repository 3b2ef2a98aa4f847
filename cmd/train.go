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
	trainType     string
	trainDuration int
	trainRPE      int
	trainKneePain int
	trainFatigue  int
	trainNoSweat  bool
	trainDate     string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Log the day's training session",
	Long: `Log the day's training session.

Flags that are not given keep the value already stored for the day, or the
form default (Natação, 45 min, RPE 7) when the day has no training yet.
Running is a high-impact activity: logging it while the knee-pain warning is
active prints an alert.`,
	Example: `  protocolctl train --type Natação --duration 45 --rpe 7
  protocolctl train --type Corrida --knee-pain 4 --fatigue 6 --no-sweat`,
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(trainRun(os.Stdout, cmd.Flags(), trainDate))
	},
}

func trainRun(w io.Writer, flags *pflag.FlagSet, date string) error {
	date = resolveDate(date)
	current, _, err := svc.Resolve(date)
	if err != nil {
		return err
	}
	entry := current.TrainingLog.OrElse(dailylog.DefaultTraining())

	if flags.Changed("type") {
		entry.Type = trainType
	}
	if flags.Changed("duration") {
		entry.Duration = trainDuration
	}
	if flags.Changed("rpe") {
		entry.RPE = trainRPE
	}
	if flags.Changed("knee-pain") {
		entry.KneePain = trainKneePain
	}
	if flags.Changed("fatigue") {
		entry.GeneralFatigue = trainFatigue
	}
	if flags.Changed("no-sweat") {
		entry.SweatSatisfied = !trainNoSweat
	}

	logs, err := svc.Update(date, logstore.FieldTraining, entry)
	if err != nil {
		return err
	}
	return reportSaved(w, logs, date, "training ("+entry.Type+")")
}

// addTrainFlags registers the entry fields on fs.
func addTrainFlags(fs *pflag.FlagSet) {
	fs.StringVar(&trainType, "type", "", "activity (see 'protocolctl schedule')")
	fs.IntVar(&trainDuration, "duration", 0, "duration in minutes")
	fs.IntVar(&trainRPE, "rpe", 0, "rate of perceived exertion (1-10)")
	fs.IntVar(&trainKneePain, "knee-pain", 0, "knee pain (0-10)")
	fs.IntVar(&trainFatigue, "fatigue", 0, "general fatigue (0-10)")
	fs.BoolVar(&trainNoSweat, "no-sweat", false, "the session did not reach a satisfying sweat")
}

func init() {
	addTrainFlags(trainCmd.Flags())
	trainCmd.Flags().StringVar(&trainDate, "date", "", "day to update (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(trainCmd)
}
