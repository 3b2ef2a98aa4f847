package logstore

import (
	"testing"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/opt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOnEmptyStore(t *testing.T) {
	logs := Logs{}
	got := Resolve(logs, "2026-10-19")

	assert.Equal(t, "2026-10-19", got.Date)
	assert.Zero(t, got.CheckedCount())
	assert.False(t, got.TrainingLog.Present())
	assert.False(t, got.SleepLog.Present())
	assert.False(t, got.CognitiveMetrics.Present())
	assert.Zero(t, logs.Len(), "Resolve must not insert the default log")
}

func TestResolveReturnsStoredLog(t *testing.T) {
	stored := dailylog.New("2026-10-19").WithCheck(dailylog.Mindfulness, true)
	logs := Logs{}.With(stored)

	assert.Equal(t, stored, Resolve(logs, "2026-10-19"))
	assert.Equal(t, Resolve(logs, "2026-10-19"), Resolve(logs, "2026-10-19"))
}

func TestUpdateFieldKeepsEarlierEdits(t *testing.T) {
	logs := Logs{}

	logs, err := UpdateField(logs, "2026-10-19", FieldWakeUp, true)
	require.NoError(t, err)
	logs, err = UpdateField(logs, "2026-10-19", FieldSleep, dailylog.DefaultSleep())
	require.NoError(t, err)
	logs, err = UpdateField(logs, "2026-10-19", FieldBreakfastNotes, "2 ovos")
	require.NoError(t, err)

	got, ok := logs.Get("2026-10-19")
	require.True(t, ok)
	assert.True(t, got.WakeUpCheck)
	assert.True(t, got.SleepLog.Present())
	assert.Equal(t, "2 ovos", got.TyrosineBreakfastNotes)
	assert.Equal(t, 1, logs.Len())
}

func TestUpdateFieldDoesNotMutateInput(t *testing.T) {
	before := Logs{}.With(dailylog.New("2026-10-18"))

	after, err := UpdateField(before, "2026-10-19", FieldLightTherapy, true)
	require.NoError(t, err)

	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, after.Len())
	_, ok := before.Get("2026-10-19")
	assert.False(t, ok)
}

func TestUpdateFieldRejectsInvalidValues(t *testing.T) {
	logs := Logs{}
	tests := []struct {
		name  string
		date  string
		field Field
		value any
	}{
		{"bad date", "19/10/2026", FieldWakeUp, true},
		{"wrong type for check", "2026-10-19", FieldWakeUp, "yes"},
		{"wrong type for training", "2026-10-19", FieldTraining, dailylog.DefaultSleep()},
		{"out of range rpe", "2026-10-19", FieldTraining, dailylog.TrainingEntry{Type: "Remo", RPE: 11}},
		{"bad clock", "2026-10-19", FieldSleep, dailylog.SleepEntry{BedTime: "25:00", SleepTime: "22:00", WakeTime: "05:30"}},
		{"unknown field", "2026-10-19", Field("napCheck"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpdateField(logs, tt.date, tt.field, tt.value)
			require.ErrorIs(t, err, dailylog.ErrInvalid)
			assert.Zero(t, got.Len())
		})
	}
}

func TestCheckFieldCoversChecklist(t *testing.T) {
	for _, c := range dailylog.Checklist() {
		f := CheckField(c)
		require.NotEmpty(t, f, "no field for %s", c)

		logs, err := UpdateField(Logs{}, "2026-10-19", f, true)
		require.NoError(t, err)
		got, _ := logs.Get("2026-10-19")
		assert.True(t, got.Checked(c))
	}
}

func TestDatesAreSorted(t *testing.T) {
	logs := Logs{}
	for _, d := range []string{"2026-10-19", "2025-12-31", "2026-01-02"} {
		logs = logs.With(dailylog.New(d))
	}
	assert.Equal(t, []string{"2025-12-31", "2026-01-02", "2026-10-19"}, logs.Dates())

	sorted := logs.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "2025-12-31", sorted[0].Date)

	trimmed := logs.Without("2026-01-02")
	assert.Equal(t, []string{"2025-12-31", "2026-10-19"}, trimmed.Dates())
	assert.Equal(t, 3, logs.Len())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	full := dailylog.New("2026-10-17").
		WithCheck(dailylog.WakeUp, true).
		WithCheck(dailylog.SleepTime, true)
	full.TyrosineBreakfastNotes = "aveia + whey"
	full.TrainingLog = opt.Some(dailylog.TrainingEntry{
		Type: "Corrida", Duration: 30, RPE: 8, SweatSatisfied: true, KneePain: 4, GeneralFatigue: 5,
	})
	full.SleepLog = opt.Some(dailylog.SleepEntry{BedTime: "21:15", SleepTime: "22:05", WakeTime: "05:40"})
	full.CognitiveMetrics = opt.Some(dailylog.CognitiveMetrics{FocusLevel: 6, MentalFog: 7, EnergyLevel: 8})

	zeroTraining := dailylog.New("2026-10-18")
	zeroTraining.TrainingLog = opt.Some(dailylog.TrainingEntry{Type: "Remo", RPE: 1})

	logs := Logs{}.With(full).With(zeroTraining).With(dailylog.New("2026-10-19"))

	data, err := Encode(logs)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, logs, got)

	recorded, _ := got.Get("2026-10-18")
	e, ok := recorded.TrainingLog.Get()
	require.True(t, ok, "a recorded all-zero entry must stay present")
	assert.Zero(t, e.KneePain)
}

func TestDecodeIsForgiving(t *testing.T) {
	data := []byte(`{
		"2026-10-19": {"wakeUpCheck": true, "moodEmoji": ":)", "sleepLog": {"wakeTime": "06:00"}},
		"2026-10-18": {"date": "2026-10-18"}
	}`)
	got, err := Decode(data)
	require.NoError(t, err)

	today, ok := got.Get("2026-10-19")
	require.True(t, ok)
	assert.Equal(t, "2026-10-19", today.Date, "missing date takes the key")
	assert.True(t, today.WakeUpCheck)
	assert.False(t, today.LightTherapyCheck)
	sleep, ok := today.SleepLog.Get()
	require.True(t, ok)
	assert.Equal(t, "06:00", sleep.WakeTime)
	assert.False(t, today.TrainingLog.Present())
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{`{not json`, `[1,2,3]`, `{"2026-10-19": {"wakeUpCheck": "yes"}}`} {
		_, err := Decode([]byte(in))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}

	for _, in := range []string{``, `   `, `null`} {
		got, err := Decode([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.NotNil(t, got)
		assert.Zero(t, got.Len())
	}
}
