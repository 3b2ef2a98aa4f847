package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/opt"
	"github.com/spf13/cobra"
)

// profile defines a user persona for generating seed data.
type profile struct {
	name        string
	description string
	// frequency is the probability of logging anything on a given day (0.0-1.0).
	frequency float64
	// adherence is the probability of each checklist item being done.
	adherence float64
	// weekendDrift is how many minutes later than 05:30 weekend wake-ups land.
	weekendDrift int
	// runChance is the probability of swapping the planned cardio for a run.
	runChance float64
	// kneeBase is the typical knee pain on training days.
	kneeBase int
}

var profiles = map[string]profile{
	"consistent": {
		name:         "consistent",
		description:  "Follows the protocol closely with a stable wake time",
		frequency:    0.95,
		adherence:    0.9,
		weekendDrift: 15,
		runChance:    0.02,
		kneeBase:     1,
	},
	"weekend-drift": {
		name:         "weekend-drift",
		description:  "Solid on weekdays, sleeps in on weekends",
		frequency:    0.85,
		adherence:    0.7,
		weekendDrift: 150,
		runChance:    0.05,
		kneeBase:     1,
	},
	"knee-flare": {
		name:         "knee-flare",
		description:  "Keeps sneaking in runs and the knee complains",
		frequency:    0.9,
		adherence:    0.75,
		weekendDrift: 60,
		runChance:    0.35,
		kneeBase:     3,
	},
}

// plannedActivities maps each weekday to the activities its plan allows.
var plannedActivities = map[time.Weekday][]string{
	time.Sunday:    {"Yoga Leve", "Mobilidade", "Caminhada"},
	time.Monday:    {"Musculação - Inferior"},
	time.Tuesday:   {"Natação", "Ciclismo"},
	time.Wednesday: {"Musculação - Superior"},
	time.Thursday:  {"Remo", "Elíptico"},
	time.Friday:    {"Musculação - Superior"},
	time.Saturday:  {"Natação", "Ciclismo"},
}

var breakfastNotes = []string{
	"ovos, queijo",
	"ovos mexidos, abacate",
	"iogurte grego, amêndoas",
	"frango, castanhas",
	"queijo cottage, banana",
	"omelete, espinafre",
}

var (
	seedDays    int
	seedSeed    int64
	seedProfile string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the log store with realistic sample history",
	Long: `Populate the log store with generated days to simulate an active user.

Available profiles:
  consistent     – Follows the protocol closely
  weekend-drift  – Sleeps in on weekends (high social jet lag)
  knee-flare     – Runs too often, triggering knee-pain warnings

Generated days replace any stored log for the same date.`,
	Example: `  protocolctl seed
  protocolctl seed --days 30 --profile knee-flare
  protocolctl seed --seed 42
  protocolctl seed --list`,
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		listProfiles, _ := cmd.Flags().GetBool("list")
		if listProfiles {
			listSeedProfiles(os.Stdout)
			return nil
		}

		p, ok := profiles[seedProfile]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown profile %q\n", seedProfile)
			fmt.Fprintln(os.Stderr, "Run 'protocolctl seed --list' to see available profiles.")
			os.Exit(1)
		}
		if seedDays < 1 {
			fmt.Fprintln(os.Stderr, "Error: --days must be at least 1")
			os.Exit(1)
		}

		seed := seedSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return exitOnError(seedRun(os.Stdout, p, seedDays, seed))
	},
}

func listSeedProfiles(w io.Writer) {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "Available profiles:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %s\n", name, profiles[name].description)
	}
}

func seedRun(w io.Writer, p profile, days int, seed int64) error {
	generated, err := generateLogs(p, svc.Today(), days, gofakeit.New(seed))
	if err != nil {
		return err
	}
	if _, err := svc.Merge(generated); err != nil {
		return err
	}
	fmt.Fprintf(w, "Seeded %d days with profile %q (seed %d).\n", generated.Len(), p.name, seed)
	return nil
}

// generateLogs builds up to days logs ending on end (inclusive).
func generateLogs(p profile, end string, days int, f *gofakeit.Faker) (logstore.Logs, error) {
	logs := logstore.Logs{}
	for back := days - 1; back >= 0; back-- {
		date, err := dailylog.ShiftDate(end, -back)
		if err != nil {
			return nil, err
		}
		if f.Float64Range(0, 1) >= p.frequency {
			continue
		}
		day, err := dailylog.ParseDate(date)
		if err != nil {
			return nil, err
		}
		logs = logs.With(generateDay(p, date, day.Weekday(), f))
	}
	return logs, nil
}

func generateDay(p profile, date string, weekday time.Weekday, f *gofakeit.Faker) dailylog.DailyLog {
	l := dailylog.New(date)
	for _, item := range dailylog.Checklist() {
		l = l.WithCheck(item, f.Float64Range(0, 1) < p.adherence)
	}
	if l.TyrosineBreakfastCheck {
		l.TyrosineBreakfastNotes = f.RandomString(breakfastNotes)
	}

	weekend := weekday == time.Saturday || weekday == time.Sunday
	wake := 5*60 + 30 + f.Number(-10, 10)
	if weekend {
		wake += p.weekendDrift
	}
	asleep := 22*60 + f.Number(-20, 40)
	l.SleepLog = opt.Some(dailylog.SleepEntry{
		BedTime:   clock(asleep - f.Number(30, 70)),
		SleepTime: clock(asleep),
		WakeTime:  clock(wake),
	})

	if f.Float64Range(0, 1) < 0.85 {
		activity := f.RandomString(plannedActivities[weekday])
		knee := p.kneeBase + f.Number(-1, 1)
		if weekday != time.Sunday && f.Float64Range(0, 1) < p.runChance {
			activity = "Corrida"
			knee += 2
		}
		l.TrainingLog = opt.Some(dailylog.TrainingEntry{
			Type:           activity,
			Duration:       f.RandomInt([]int{30, 45, 45, 60}),
			RPE:            f.Number(5, 9),
			SweatSatisfied: f.Float64Range(0, 1) < 0.8,
			KneePain:       bound(knee, 0, 10),
			GeneralFatigue: f.Number(1, 6),
		})
	}

	if f.Float64Range(0, 1) < 0.7 {
		l.CognitiveMetrics = opt.Some(dailylog.CognitiveMetrics{
			FocusLevel:  f.Number(4, 9),
			MentalFog:   f.Number(4, 10),
			EnergyLevel: f.Number(4, 9),
		})
	}
	return l
}

// clock formats minutes after midnight as "HH:MM", wrapping around the day.
func clock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func bound(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 60, "number of days to generate, ending today")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 0, "random seed (0 = time based)")
	seedCmd.Flags().StringVar(&seedProfile, "profile", "consistent", "persona to simulate")
	seedCmd.Flags().Bool("list", false, "list available profiles")
	rootCmd.AddCommand(seedCmd)
}
