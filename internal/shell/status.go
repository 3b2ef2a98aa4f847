package shell

import (
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/metrics"
)

// Status is the prompt summary for one day.
type Status struct {
	HasToday    bool `json:"has_today"`
	Checked     int  `json:"checked"`
	Adherence   int  `json:"adherence"`
	Streak      int  `json:"streak"`
	KneeWarning bool `json:"knee_warning"`
}

// ComputeStatus derives the prompt status for today from logs: whether the
// day has a stored log, its checklist progress, the logging streak, and the
// knee-pain warning.
func ComputeStatus(logs logstore.Logs, today string) Status {
	log := logstore.Resolve(logs, today)
	_, stored := logs.Get(today)
	return Status{
		HasToday:    stored,
		Checked:     log.CheckedCount(),
		Adherence:   metrics.Adherence(log),
		Streak:      metrics.Streak(logs, today),
		KneeWarning: metrics.KneePainWarning(logs, log),
	}
}
