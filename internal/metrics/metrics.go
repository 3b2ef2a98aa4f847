// Package metrics derives scores and chart data from the log store.
// Every function here is total: missing days and missing detail entries are
// treated as absent data, never as errors.
package metrics

import (
	"math"
	"time"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/schedule"
)

// KneePainThreshold is the highest knee pain rating that does not count
// toward the warning streak.
const KneePainThreshold = 3

// kneePainWindow is how many consecutive days, ending today, must exceed
// the threshold.
const kneePainWindow = 3

// Adherence returns the share of checklist items done, as a percentage
// rounded half up.
func Adherence(l dailylog.DailyLog) int {
	total := len(dailylog.Checklist())
	return int(math.Floor(100*float64(l.CheckedCount())/float64(total) + 0.5))
}

// IsHighImpact reports whether the training type is the catalog's
// high-impact activity.
func IsHighImpact(trainingType string) bool {
	return trainingType == schedule.HighImpactActivity
}

// KneePainWarning reports whether today's training entry and the training
// entries of the two preceding calendar days all rate knee pain above the
// threshold. A prior day with no log or no training entry suppresses the
// warning. today does not need to be stored; pass the unsaved form state to
// preview the warning before saving.
func KneePainWarning(logs logstore.Logs, today dailylog.DailyLog) bool {
	if kneePain(today) <= KneePainThreshold {
		return false
	}
	for back := 1; back < kneePainWindow; back++ {
		date, err := dailylog.ShiftDate(today.Date, -back)
		if err != nil {
			return false
		}
		prior, ok := logs.Get(date)
		if !ok || kneePain(prior) <= KneePainThreshold {
			return false
		}
	}
	return true
}

func kneePain(l dailylog.DailyLog) int {
	e, ok := l.TrainingLog.Get()
	if !ok {
		return 0
	}
	return e.KneePain
}

// Streak counts consecutive calendar days, ending at today, that have a
// stored log.
func Streak(logs logstore.Logs, today string) int {
	streak := 0
	check := today
	for {
		if _, ok := logs.Get(check); !ok {
			break
		}
		streak++
		prev, err := dailylog.ShiftDate(check, -1)
		if err != nil {
			break
		}
		check = prev
	}
	return streak
}

// isWeekend classifies a stored date key by its calendar day of week.
func isWeekend(date string) (weekend bool, ok bool) {
	t, err := dailylog.ParseDate(date)
	if err != nil {
		return false, false
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true, true
	}
	return false, true
}
