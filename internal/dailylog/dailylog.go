// Package dailylog provides the DailyLog record and its detail entries.
// A DailyLog is keyed by its local calendar date and carries the fixed
// morning-to-night checklist plus optional training, sleep and cognitive logs.
package dailylog

import (
	"github.com/chris-regnier/protocolctl/internal/opt"
	"github.com/chris-regnier/protocolctl/internal/schedule"
)

// TrainingEntry records one day's training session and its physical cost.
type TrainingEntry struct {
	Type           string `json:"type"`
	Duration       int    `json:"duration"` // minutes
	RPE            int    `json:"rpe"`      // 1-10
	SweatSatisfied bool   `json:"sweatSatisfied"`
	KneePain       int    `json:"kneePain"`       // 0-10
	GeneralFatigue int    `json:"generalFatigue"` // 0-10
}

// SleepEntry records the previous night's sleep as "HH:MM" clock strings.
type SleepEntry struct {
	BedTime   string `json:"bedTime"`
	SleepTime string `json:"sleepTime"`
	WakeTime  string `json:"wakeTime"`
}

// CognitiveMetrics records self-rated cognition on a 1-10 scale.
type CognitiveMetrics struct {
	FocusLevel  int `json:"focusLevel"`
	MentalFog   int `json:"mentalFog"` // 10 = full clarity
	EnergyLevel int `json:"energyLevel"`
}

// DailyLog is the record for one calendar day.
type DailyLog struct {
	// Date is the local calendar date, "YYYY-MM-DD"
	Date string `json:"date"`

	WakeUpCheck            bool   `json:"wakeUpCheck"`
	LightTherapyCheck      bool   `json:"lightTherapyCheck"`
	TyrosineBreakfastCheck bool   `json:"tyrosineBreakfastCheck"`
	TyrosineBreakfastNotes string `json:"tyrosineBreakfastNotes,omitempty"`
	MindfulnessCheck       bool   `json:"mindfulnessCheck"`
	ShutdownRitualCheck    bool   `json:"shutdownRitualCheck"`
	SleepTimeCheck         bool   `json:"sleepTimeCheck"`

	// Detail logs stay absent until explicitly saved.
	TrainingLog      opt.Value[TrainingEntry]    `json:"trainingLog"`
	SleepLog         opt.Value[SleepEntry]       `json:"sleepLog"`
	CognitiveMetrics opt.Value[CognitiveMetrics] `json:"cognitiveMetrics"`
}

// New returns an untouched log for date: every check false, every detail absent.
func New(date string) DailyLog {
	return DailyLog{Date: date}
}

// DefaultTraining is the form preset for a day without a training entry.
func DefaultTraining() TrainingEntry {
	return TrainingEntry{
		Type:           schedule.DefaultActivity(),
		Duration:       45,
		RPE:            7,
		SweatSatisfied: true,
		KneePain:       0,
		GeneralFatigue: 2,
	}
}

// DefaultSleep is the form preset for a day without a sleep entry.
func DefaultSleep() SleepEntry {
	return SleepEntry{BedTime: "21:00", SleepTime: "22:00", WakeTime: "05:30"}
}

// DefaultCognitive is the form preset for a day without cognitive metrics.
func DefaultCognitive() CognitiveMetrics {
	return CognitiveMetrics{FocusLevel: 7, MentalFog: 8, EnergyLevel: 7}
}

// Checked reports whether the given checklist item is done.
func (l DailyLog) Checked(c ChecklistItem) bool {
	switch c {
	case WakeUp:
		return l.WakeUpCheck
	case LightTherapy:
		return l.LightTherapyCheck
	case Breakfast:
		return l.TyrosineBreakfastCheck
	case Mindfulness:
		return l.MindfulnessCheck
	case ShutdownRitual:
		return l.ShutdownRitualCheck
	case SleepTime:
		return l.SleepTimeCheck
	}
	return false
}

// WithCheck returns a copy of l with the given checklist item set to done.
func (l DailyLog) WithCheck(c ChecklistItem, done bool) DailyLog {
	switch c {
	case WakeUp:
		l.WakeUpCheck = done
	case LightTherapy:
		l.LightTherapyCheck = done
	case Breakfast:
		l.TyrosineBreakfastCheck = done
	case Mindfulness:
		l.MindfulnessCheck = done
	case ShutdownRitual:
		l.ShutdownRitualCheck = done
	case SleepTime:
		l.SleepTimeCheck = done
	}
	return l
}

// CheckedCount returns how many of the checklist items are done.
func (l DailyLog) CheckedCount() int {
	n := 0
	for _, c := range Checklist() {
		if l.Checked(c) {
			n++
		}
	}
	return n
}

// Empty reports whether nothing has been recorded on the log.
func (l DailyLog) Empty() bool {
	return l == New(l.Date)
}
