package dailylog

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/protocolctl/internal/opt"
)

func TestNewIsUntouched(t *testing.T) {
	l := New("2026-10-19")
	if l.Date != "2026-10-19" {
		t.Errorf("Date = %q", l.Date)
	}
	if l.CheckedCount() != 0 {
		t.Errorf("expected no checks, got %d", l.CheckedCount())
	}
	if l.TrainingLog.Present() || l.SleepLog.Present() || l.CognitiveMetrics.Present() {
		t.Error("expected all detail logs absent")
	}
	if !l.Empty() {
		t.Error("expected Empty() on a new log")
	}
}

func TestWithCheckCopies(t *testing.T) {
	orig := New("2026-10-19")
	for _, c := range Checklist() {
		updated := orig.WithCheck(c, true)
		if !updated.Checked(c) {
			t.Errorf("%s: expected checked", c)
		}
		if updated.CheckedCount() != 1 {
			t.Errorf("%s: expected exactly one check, got %d", c, updated.CheckedCount())
		}
	}
	if orig.CheckedCount() != 0 {
		t.Error("WithCheck must not modify the receiver's copy")
	}
}

func TestParseChecklistItem(t *testing.T) {
	for _, c := range Checklist() {
		got, err := ParseChecklistItem(c.Key())
		if err != nil {
			t.Fatalf("ParseChecklistItem(%q): %v", c.Key(), err)
		}
		if got != c {
			t.Errorf("ParseChecklistItem(%q) = %v", c.Key(), got)
		}
	}
	if _, err := ParseChecklistItem("WAKE-UP "); err != nil {
		t.Errorf("expected case-insensitive match, got %v", err)
	}
	if _, err := ParseChecklistItem("nap"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"05:30", 330, false},
		{"5:30", 330, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestShiftDateAcrossDST(t *testing.T) {
	// US DST starts 2026-03-08 and ends 2026-11-01.
	tests := []struct {
		date string
		days int
		want string
	}{
		{"2026-03-09", -1, "2026-03-08"},
		{"2026-03-09", -2, "2026-03-07"},
		{"2026-11-02", -1, "2026-11-01"},
		{"2026-11-02", -2, "2026-10-31"},
		{"2026-03-01", -1, "2026-02-28"},
		{"2024-03-01", -1, "2024-02-29"},
	}
	for _, tt := range tests {
		got, err := ShiftDate(tt.date, tt.days)
		if err != nil {
			t.Fatalf("ShiftDate(%q): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("ShiftDate(%q, %d) = %q, want %q", tt.date, tt.days, got, tt.want)
		}
	}
}

func TestDateKeyUsesCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2026, 10, 19, 23, 30, 0, 0, loc)
	if got := DateKey(late); got != "2026-10-19" {
		t.Errorf("DateKey = %q, want local calendar date 2026-10-19", got)
	}
}

func TestValidate(t *testing.T) {
	good := DefaultTraining()
	if err := good.Validate(); err != nil {
		t.Errorf("default training should validate: %v", err)
	}
	if err := DefaultSleep().Validate(); err != nil {
		t.Errorf("default sleep should validate: %v", err)
	}
	if err := DefaultCognitive().Validate(); err != nil {
		t.Errorf("default cognitive should validate: %v", err)
	}

	bad := []error{
		TrainingEntry{Type: "Crossfit", RPE: 5}.Validate(),
		TrainingEntry{Type: "Remo", RPE: 0}.Validate(),
		TrainingEntry{Type: "Remo", RPE: 5, KneePain: 11}.Validate(),
		TrainingEntry{Type: "Remo", RPE: 5, Duration: -1}.Validate(),
		SleepEntry{BedTime: "21:00", SleepTime: "22:00", WakeTime: "5h30"}.Validate(),
		CognitiveMetrics{FocusLevel: 0, MentalFog: 5, EnergyLevel: 5}.Validate(),
	}
	for i, err := range bad {
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("case %d: expected ErrInvalid, got %v", i, err)
		}
	}
}

func TestJSONFieldNames(t *testing.T) {
	l := New("2026-10-19").WithCheck(WakeUp, true)
	l.SleepLog = opt.Some(DefaultSleep())

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"date", "wakeUpCheck", "lightTherapyCheck", "tyrosineBreakfastCheck",
		"mindfulnessCheck", "shutdownRitualCheck", "sleepTimeCheck", "trainingLog", "sleepLog", "cognitiveMetrics"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing JSON field %q", key)
		}
	}
	if raw["trainingLog"] != nil {
		t.Errorf("absent training log should encode as null, got %v", raw["trainingLog"])
	}
	sleep, _ := raw["sleepLog"].(map[string]any)
	if sleep["wakeTime"] != "05:30" {
		t.Errorf("sleepLog.wakeTime = %v", sleep["wakeTime"])
	}
}
