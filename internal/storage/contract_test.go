package storage_test

import (
	"testing"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/opt"
	"github.com/chris-regnier/protocolctl/internal/storage"
	"github.com/chris-regnier/protocolctl/internal/storage/jsonfile"
	"github.com/chris-regnier/protocolctl/internal/storage/sqlite"
)

// storageFactory opens a backend rooted at dir. Calling it twice with the
// same dir must reopen the same persisted slot.
type storageFactory func(t *testing.T, dir string) storage.Storage

func jsonFactory(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating json storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleLogs() logstore.Logs {
	mon := dailylog.New("2026-10-19").
		WithCheck(dailylog.WakeUp, true).
		WithCheck(dailylog.Breakfast, true)
	mon.TyrosineBreakfastNotes = "ovos, queijo"
	mon.TrainingLog = opt.Some(dailylog.TrainingEntry{
		Type: "Natação", Duration: 45, RPE: 7, SweatSatisfied: true, KneePain: 1, GeneralFatigue: 3,
	})
	mon.SleepLog = opt.Some(dailylog.SleepEntry{BedTime: "21:00", SleepTime: "22:10", WakeTime: "05:30"})

	sun := dailylog.New("2026-10-18")
	sun.CognitiveMetrics = opt.Some(dailylog.CognitiveMetrics{FocusLevel: 5, MentalFog: 6, EnergyLevel: 4})

	return logstore.Logs{}.With(mon).With(sun).With(dailylog.New("2026-10-17"))
}

func assertSameLogs(t *testing.T, got, want logstore.Logs) {
	t.Helper()
	if got.Len() != want.Len() {
		t.Fatalf("got %d logs, want %d", got.Len(), want.Len())
	}
	for date, w := range want {
		g, ok := got.Get(date)
		if !ok {
			t.Errorf("missing log for %s", date)
			continue
		}
		if g != w {
			t.Errorf("log %s = %+v, want %+v", date, g, w)
		}
	}
}

func runContractTests(t *testing.T, name string, factory storageFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Load empty", func(t *testing.T) {
			s := factory(t, t.TempDir())
			logs, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if logs == nil {
				t.Fatal("expected non-nil empty store")
			}
			if logs.Len() != 0 {
				t.Errorf("expected empty store, got %d logs", logs.Len())
			}
		})

		t.Run("Save and Load", func(t *testing.T) {
			s := factory(t, t.TempDir())
			want := sampleLogs()
			if err := s.Save(want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			assertSameLogs(t, got, want)
		})

		t.Run("Save replaces whole slot", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Save(sampleLogs()); err != nil {
				t.Fatalf("Save: %v", err)
			}
			smaller := sampleLogs().Without("2026-10-17").Without("2026-10-18")
			if err := s.Save(smaller); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			assertSameLogs(t, got, smaller)
		})

		t.Run("Save empty store", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Save(sampleLogs()); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(logstore.Logs{}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Len() != 0 {
				t.Errorf("expected empty store, got %d logs", got.Len())
			}
		})

		t.Run("Persists across reopen", func(t *testing.T) {
			dir := t.TempDir()
			first := factory(t, dir)
			want := sampleLogs()
			if err := first.Save(want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := first.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			second := factory(t, dir)
			got, err := second.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			assertSameLogs(t, got, want)
		})

		t.Run("Absent details stay absent", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Save(logstore.Logs{}.With(dailylog.New("2026-10-19"))); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			l, _ := got.Get("2026-10-19")
			if l.TrainingLog.Present() || l.SleepLog.Present() || l.CognitiveMetrics.Present() {
				t.Errorf("expected absent details, got %+v", l)
			}
		})
	})
}

func TestJSONFileStorage(t *testing.T) {
	runContractTests(t, "jsonfile", jsonFactory)
}

func TestSQLiteStorage(t *testing.T) {
	runContractTests(t, "sqlite", sqliteFactory)
}
