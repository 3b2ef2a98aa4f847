package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/storage"
	"github.com/chris-regnier/protocolctl/internal/ui"
)

func seedDay(t *testing.T, date string) {
	t.Helper()
	if _, err := svc.SetCheck(date, dailylog.WakeUp, true); err != nil {
		t.Fatalf("SetCheck %s: %v", date, err)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	setupTestEnv(t)
	seedDay(t, "2026-10-18")
	seedDay(t, "2026-10-19")

	var gotDetail string
	confirm := func(prompt, detail string) (bool, error) {
		gotDetail = detail
		return true, nil
	}

	var buf bytes.Buffer
	if err := deleteRun(&buf, "2026-10-18", confirm); err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	if !strings.Contains(gotDetail, "2026-10-18: 1/6") {
		t.Errorf("unexpected confirm detail %q", gotDetail)
	}
	if !strings.Contains(buf.String(), "Deleted log for 2026-10-18.") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	logs, _ := store.Load()
	if _, ok := logs.Get("2026-10-18"); ok {
		t.Error("expected 2026-10-18 to be deleted")
	}
	if _, ok := logs.Get("2026-10-19"); !ok {
		t.Error("expected 2026-10-19 to survive")
	}
}

func TestDeleteCancelled(t *testing.T) {
	setupTestEnv(t)
	seedDay(t, "2026-10-18")

	var buf bytes.Buffer
	err := deleteRun(&buf, "2026-10-18", func(string, string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Cancelled." {
		t.Errorf("unexpected output: %q", buf.String())
	}
	logs, _ := store.Load()
	if logs.Len() != 1 {
		t.Errorf("expected log to survive, got %d logs", logs.Len())
	}
}

func TestDeleteNotFound(t *testing.T) {
	setupTestEnv(t)

	err := deleteRun(&bytes.Buffer{}, "2026-10-18", nil)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if exitCode(err) != 1 {
		t.Errorf("exit code = %d, want 1", exitCode(err))
	}
}

func TestDeleteJSONOutput(t *testing.T) {
	setupTestEnv(t)
	seedDay(t, "2026-10-18")
	jsonOutput = true

	var buf bytes.Buffer
	if err := deleteRun(&buf, "2026-10-18", nil); err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	var got ui.DeleteResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if !got.Deleted || got.Date != "2026-10-18" {
		t.Errorf("unexpected result %+v", got)
	}
}
