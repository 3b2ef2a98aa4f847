package metrics

import (
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/opt"
)

// Row is one day of chart data. Optional metrics are absent, not zero, on
// days where the underlying entry was never recorded.
type Row struct {
	Date           string             `json:"date"`
	Label          string             `json:"label"`
	Adherence      int                `json:"adherence"`
	KneePain       opt.Value[int]     `json:"kneePain"`
	GeneralFatigue opt.Value[int]     `json:"generalFatigue"`
	Focus          opt.Value[int]     `json:"focus"`
	Clarity        opt.Value[int]     `json:"clarity"`
	Energy         opt.Value[int]     `json:"energy"`
	WakeHour       opt.Value[float64] `json:"wakeTime"`
}

// ProjectRows returns one row per stored log in ascending date order.
func ProjectRows(logs logstore.Logs) []Row {
	sorted := logs.Sorted()
	rows := make([]Row, 0, len(sorted))
	for _, l := range sorted {
		rows = append(rows, projectRow(l))
	}
	return rows
}

func projectRow(l dailylog.DailyLog) Row {
	training := l.TrainingLog
	cognitive := l.CognitiveMetrics

	return Row{
		Date:           l.Date,
		Label:          label(l.Date),
		Adherence:      Adherence(l),
		KneePain:       opt.Map(training, func(e dailylog.TrainingEntry) int { return e.KneePain }),
		GeneralFatigue: opt.Map(training, func(e dailylog.TrainingEntry) int { return e.GeneralFatigue }),
		Focus:          opt.Map(cognitive, func(m dailylog.CognitiveMetrics) int { return m.FocusLevel }),
		Clarity:        opt.Map(cognitive, func(m dailylog.CognitiveMetrics) int { return m.MentalFog }),
		Energy:         opt.Map(cognitive, func(m dailylog.CognitiveMetrics) int { return m.EnergyLevel }),
		WakeHour:       wakeHour(l.SleepLog),
	}
}

// label formats a date key as "DD/MM".
func label(date string) string {
	t, err := dailylog.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("02/01")
}

func wakeHour(sleep opt.Value[dailylog.SleepEntry]) opt.Value[float64] {
	s, ok := sleep.Get()
	if !ok {
		return opt.None[float64]()
	}
	mins, err := dailylog.ParseClock(s.WakeTime)
	if err != nil {
		return opt.None[float64]()
	}
	return opt.Some(float64(mins) / 60)
}

// MeanAdherence averages the adherence of the given rows, or 0 for none.
func MeanAdherence(rows []Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rows {
		sum += r.Adherence
	}
	return float64(sum) / float64(len(rows))
}
