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
	cognitiveFocus   int
	cognitiveClarity int
	cognitiveEnergy  int
	cognitiveDate    string
)

var cognitiveCmd = &cobra.Command{
	Use:   "cognitive",
	Short: "Log focus, mental clarity and energy",
	Long: `Log the day's cognitive self-ratings on a 1-10 scale.

Clarity is the inverse of brain fog: 10 means a fully clear head.`,
	Example: `  protocolctl cognitive --focus 7 --clarity 8 --energy 6`,
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(cognitiveRun(os.Stdout, cmd.Flags(), cognitiveDate))
	},
}

func cognitiveRun(w io.Writer, flags *pflag.FlagSet, date string) error {
	date = resolveDate(date)
	current, _, err := svc.Resolve(date)
	if err != nil {
		return err
	}
	m := current.CognitiveMetrics.OrElse(dailylog.DefaultCognitive())

	if flags.Changed("focus") {
		m.FocusLevel = cognitiveFocus
	}
	if flags.Changed("clarity") {
		m.MentalFog = cognitiveClarity
	}
	if flags.Changed("energy") {
		m.EnergyLevel = cognitiveEnergy
	}

	logs, err := svc.Update(date, logstore.FieldCognitive, m)
	if err != nil {
		return err
	}
	return reportSaved(w, logs, date, "cognitive metrics")
}

func addCognitiveFlags(fs *pflag.FlagSet) {
	fs.IntVar(&cognitiveFocus, "focus", 0, "focus level (1-10)")
	fs.IntVar(&cognitiveClarity, "clarity", 0, "mental clarity (1-10, 10 = no fog)")
	fs.IntVar(&cognitiveEnergy, "energy", 0, "energy level (1-10)")
}

func init() {
	addCognitiveFlags(cognitiveCmd.Flags())
	cognitiveCmd.Flags().StringVar(&cognitiveDate, "date", "", "day to update (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(cognitiveCmd)
}
