package daily

import (
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/schedule"
)

// Summary is everything shown for one day: the log, the day's training plan
// and the scores derived from them.
type Summary struct {
	Date            string            `json:"date"`
	Weekday         string            `json:"weekday"`
	Plan            schedule.Plan     `json:"plan"`
	Log             dailylog.DailyLog `json:"log"`
	Stored          bool              `json:"stored"`
	Checked         int               `json:"checked"`
	Total           int               `json:"total"`
	Adherence       int               `json:"adherence"`
	HighImpact      bool              `json:"highImpact"`
	KneePainWarning bool              `json:"kneePainWarning"`
}

// Summarize builds the Summary for date from logs. date must be a valid key.
func Summarize(logs logstore.Logs, date string) (Summary, error) {
	t, err := dailylog.ParseDate(date)
	if err != nil {
		return Summary{}, err
	}
	log := logstore.Resolve(logs, date)
	_, stored := logs.Get(date)

	s := Summary{
		Date:            date,
		Weekday:         t.Weekday().String(),
		Plan:            schedule.ForWeekday(t.Weekday()),
		Log:             log,
		Stored:          stored,
		Checked:         log.CheckedCount(),
		Total:           len(dailylog.Checklist()),
		Adherence:       metrics.Adherence(log),
		KneePainWarning: metrics.KneePainWarning(logs, log),
	}
	if e, ok := log.TrainingLog.Get(); ok {
		s.HighImpact = metrics.IsHighImpact(e.Type)
	}
	return s, nil
}

// Summarize loads the store and summarizes date.
func (s *Service) Summarize(date string) (Summary, error) {
	logs, err := s.Load()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(logs, date)
}
