// Package logstore provides the date-keyed collection of daily logs.
//
// Logs is treated as an immutable value: every operation that changes it
// returns a new map and leaves its receiver untouched, so a caller holding an
// older snapshot never observes a half-applied edit.
package logstore

import (
	"fmt"
	"sort"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/opt"
)

// SlotName is the name of the single persisted slot holding the store.
const SlotName = "neuro-protocol-logs"

// Logs maps a "YYYY-MM-DD" date key to the log for that day.
type Logs map[string]dailylog.DailyLog

// Field names a single updatable DailyLog field, using its serialized name.
type Field string

const (
	FieldWakeUp         Field = "wakeUpCheck"
	FieldLightTherapy   Field = "lightTherapyCheck"
	FieldBreakfast      Field = "tyrosineBreakfastCheck"
	FieldBreakfastNotes Field = "tyrosineBreakfastNotes"
	FieldMindfulness    Field = "mindfulnessCheck"
	FieldShutdownRitual Field = "shutdownRitualCheck"
	FieldSleepTime      Field = "sleepTimeCheck"
	FieldTraining       Field = "trainingLog"
	FieldSleep          Field = "sleepLog"
	FieldCognitive      Field = "cognitiveMetrics"
)

var checkFields = map[Field]dailylog.ChecklistItem{
	FieldWakeUp:         dailylog.WakeUp,
	FieldLightTherapy:   dailylog.LightTherapy,
	FieldBreakfast:      dailylog.Breakfast,
	FieldMindfulness:    dailylog.Mindfulness,
	FieldShutdownRitual: dailylog.ShutdownRitual,
	FieldSleepTime:      dailylog.SleepTime,
}

// CheckField returns the Field holding the given checklist item.
func CheckField(c dailylog.ChecklistItem) Field {
	for f, item := range checkFields {
		if item == c {
			return f
		}
	}
	return ""
}

// Get returns the stored log for date, if any.
func (l Logs) Get(date string) (dailylog.DailyLog, bool) {
	log, ok := l[date]
	return log, ok
}

// Len returns the number of stored days.
func (l Logs) Len() int {
	return len(l)
}

// Clone returns a shallow copy of the map. DailyLog values carry no shared
// references, so the copy is fully independent.
func (l Logs) Clone() Logs {
	out := make(Logs, len(l)+1)
	for k, v := range l {
		out[k] = v
	}
	return out
}

// With returns a new store with log stored under log.Date.
func (l Logs) With(log dailylog.DailyLog) Logs {
	out := l.Clone()
	out[log.Date] = log
	return out
}

// Without returns a new store with date removed.
func (l Logs) Without(date string) Logs {
	out := l.Clone()
	delete(out, date)
	return out
}

// Dates returns the stored date keys in ascending order.
func (l Logs) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Sorted returns the stored logs in ascending date order.
func (l Logs) Sorted() []dailylog.DailyLog {
	dates := l.Dates()
	out := make([]dailylog.DailyLog, len(dates))
	for i, d := range dates {
		out[i] = l[d]
	}
	return out
}

// Resolve returns the stored log for date, or a fresh untouched log when the
// day was never recorded. The fresh log is not inserted into the store.
func Resolve(l Logs, date string) dailylog.DailyLog {
	if log, ok := l[date]; ok {
		return log
	}
	return dailylog.New(date)
}

// UpdateField re-resolves the log for date, overlays one field with value and
// returns a new store with that date replaced. The value's type must match
// the field: bool for checklist flags, string for breakfast notes, and the
// matching entry type for detail logs. Detail entries are validated; an
// invalid value leaves the store unchanged and returns an error wrapping
// dailylog.ErrInvalid.
func UpdateField(l Logs, date string, field Field, value any) (Logs, error) {
	if _, err := dailylog.ParseDate(date); err != nil {
		return l, err
	}
	log, err := apply(Resolve(l, date), field, value)
	if err != nil {
		return l, err
	}
	log.Date = date
	return l.With(log), nil
}

func apply(log dailylog.DailyLog, field Field, value any) (dailylog.DailyLog, error) {
	if item, ok := checkFields[field]; ok {
		done, ok := value.(bool)
		if !ok {
			return log, typeError(field, "bool", value)
		}
		return log.WithCheck(item, done), nil
	}

	switch field {
	case FieldBreakfastNotes:
		notes, ok := value.(string)
		if !ok {
			return log, typeError(field, "string", value)
		}
		log.TyrosineBreakfastNotes = notes
	case FieldTraining:
		e, ok := value.(dailylog.TrainingEntry)
		if !ok {
			return log, typeError(field, "TrainingEntry", value)
		}
		if err := e.Validate(); err != nil {
			return log, err
		}
		log.TrainingLog = opt.Some(e)
	case FieldSleep:
		e, ok := value.(dailylog.SleepEntry)
		if !ok {
			return log, typeError(field, "SleepEntry", value)
		}
		if err := e.Validate(); err != nil {
			return log, err
		}
		log.SleepLog = opt.Some(e)
	case FieldCognitive:
		m, ok := value.(dailylog.CognitiveMetrics)
		if !ok {
			return log, typeError(field, "CognitiveMetrics", value)
		}
		if err := m.Validate(); err != nil {
			return log, err
		}
		log.CognitiveMetrics = opt.Some(m)
	default:
		return log, fmt.Errorf("%w: unknown field %q", dailylog.ErrInvalid, field)
	}
	return log, nil
}

func typeError(field Field, want string, got any) error {
	return fmt.Errorf("%w: field %s expects %s, got %T", dailylog.ErrInvalid, field, want, got)
}
