package dailylog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/chris-regnier/protocolctl/internal/schedule"
)

// DateLayout is the layout of DailyLog.Date and of the store keys.
const DateLayout = "2006-01-02"

var (
	// ErrInvalid indicates a value outside the documented range or format.
	ErrInvalid = errors.New("invalid value")

	clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// DateKey formats t as a store key using t's own calendar date.
// Pass a local time to get the local calendar day.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" key as a calendar date.
// The result is midnight UTC so that calendar arithmetic never crosses a
// daylight saving transition.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q (use YYYY-MM-DD)", ErrInvalid, s)
	}
	return t, nil
}

// ShiftDate returns the key days calendar days away from date.
func ShiftDate(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// ParseClock converts an "HH:MM" 24-hour clock string to minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: clock time %q (use HH:MM)", ErrInvalid, s)
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return h*60 + mins, nil
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %d out of range %d-%d", ErrInvalid, name, v, lo, hi)
	}
	return nil
}

// Validate checks the entry against the activity catalog and its value ranges.
func (e TrainingEntry) Validate() error {
	if !schedule.IsActivity(e.Type) {
		return fmt.Errorf("%w: unknown training type %q", ErrInvalid, e.Type)
	}
	if e.Duration < 0 {
		return fmt.Errorf("%w: duration %d must not be negative", ErrInvalid, e.Duration)
	}
	if err := checkRange("rpe", e.RPE, 1, 10); err != nil {
		return err
	}
	if err := checkRange("knee pain", e.KneePain, 0, 10); err != nil {
		return err
	}
	return checkRange("general fatigue", e.GeneralFatigue, 0, 10)
}

// Validate checks that every clock field is a valid "HH:MM" time.
func (e SleepEntry) Validate() error {
	for _, c := range []string{e.BedTime, e.SleepTime, e.WakeTime} {
		if _, err := ParseClock(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every rating is within 1-10.
func (m CognitiveMetrics) Validate() error {
	if err := checkRange("focus", m.FocusLevel, 1, 10); err != nil {
		return err
	}
	if err := checkRange("clarity", m.MentalFog, 1, 10); err != nil {
		return err
	}
	return checkRange("energy", m.EnergyLevel, 1, 10)
}
