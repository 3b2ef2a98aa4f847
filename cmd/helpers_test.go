package cmd

import (
	"regexp"
	"testing"
	"time"

	"github.com/chris-regnier/protocolctl/internal/config"
	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/storage/jsonfile"
	"github.com/spf13/pflag"
)

// testNow is a Monday morning.
var testNow = time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)

func setupTestStore(t *testing.T, dir string) *jsonfile.Store {
	t.Helper()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	store = setupTestStore(t, dir)
	svc = daily.NewService(store).WithClock(func() time.Time { return testNow })
	appConfig = &config.Config{
		Storage:  config.BackendJSON,
		DataDir:  dir,
		MaxWidth: 80,
		Theme:    config.ThemeConfig{Preset: "default-dark"},
		Shell: config.ShellConfig{
			CacheTTL:    "5m",
			DoneIcon:    "✓",
			PendingIcon: "○",
			StreakIcon:  "🔥",
			WarningIcon: "⚠",
		},
	}
	jsonOutput = false
}

// parseFlags registers flags with add on a fresh set and parses args.
func parseFlags(t *testing.T, add func(*pflag.FlagSet), args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	add(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags %v: %v", args, err)
	}
	return fs
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
