// Package daily resolves the current day's log and applies edits to the
// persisted store.
package daily

import (
	"errors"
	"fmt"
	"time"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/storage"
	"github.com/sirupsen/logrus"
)

// Today returns the local calendar date of now as a store key.
func Today(now time.Time) string {
	return dailylog.DateKey(now.Local())
}

// Service applies edits to the store held by a storage backend.
//
// Every edit reloads the persisted store first and writes the whole store
// back, so consecutive edits to different fields of the same day compose
// instead of overwriting each other.
type Service struct {
	store storage.Storage
	now   func() time.Time
}

// NewService returns a Service writing through store.
func NewService(store storage.Storage) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock returns a copy of s that uses now as its clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// Today returns the current local date key according to the service clock.
func (s *Service) Today() string {
	return Today(s.now())
}

// Load returns the persisted store. Malformed data is logged and treated as
// an empty store; other storage failures are returned.
func (s *Service) Load() (logstore.Logs, error) {
	logs, err := s.store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrMalformed) {
			logrus.WithError(err).Warn("stored logs are malformed, starting from an empty store")
			return logstore.Logs{}, nil
		}
		return nil, err
	}
	return logs, nil
}

// Resolve returns the log for date along with the store it was resolved
// from. A day never recorded yields a default log that is not saved.
func (s *Service) Resolve(date string) (dailylog.DailyLog, logstore.Logs, error) {
	if _, err := dailylog.ParseDate(date); err != nil {
		return dailylog.DailyLog{}, nil, err
	}
	logs, err := s.Load()
	if err != nil {
		return dailylog.DailyLog{}, nil, err
	}
	return logstore.Resolve(logs, date), logs, nil
}

// ResolveToday is Resolve for the current local date.
func (s *Service) ResolveToday() (dailylog.DailyLog, logstore.Logs, error) {
	return s.Resolve(s.Today())
}

// Update sets one field of the log for date and persists the result.
// It returns the updated store. On a validation error nothing is written.
func (s *Service) Update(date string, field logstore.Field, value any) (logstore.Logs, error) {
	logs, err := s.Load()
	if err != nil {
		return nil, err
	}
	next, err := logstore.UpdateField(logs, date, field, value)
	if err != nil {
		return logs, err
	}
	if err := s.store.Save(next); err != nil {
		return logs, fmt.Errorf("saving log for %s: %w", date, err)
	}
	logrus.WithFields(logrus.Fields{"date": date, "field": string(field)}).Debug("log updated")
	return next, nil
}

// SetCheck marks a checklist item done or not done for date.
func (s *Service) SetCheck(date string, item dailylog.ChecklistItem, done bool) (logstore.Logs, error) {
	return s.Update(date, logstore.CheckField(item), done)
}

// Toggle flips a checklist item for date.
func (s *Service) Toggle(date string, item dailylog.ChecklistItem) (logstore.Logs, error) {
	log, _, err := s.Resolve(date)
	if err != nil {
		return nil, err
	}
	return s.SetCheck(date, item, !log.Checked(item))
}

// Delete removes the log for date. It returns an error wrapping
// storage.ErrNotFound when the day was never recorded.
func (s *Service) Delete(date string) (logstore.Logs, error) {
	if _, err := dailylog.ParseDate(date); err != nil {
		return nil, err
	}
	logs, err := s.Load()
	if err != nil {
		return nil, err
	}
	if _, ok := logs.Get(date); !ok {
		return logs, fmt.Errorf("%w: %s", storage.ErrNotFound, date)
	}
	next := logs.Without(date)
	if err := s.store.Save(next); err != nil {
		return logs, fmt.Errorf("deleting log for %s: %w", date, err)
	}
	return next, nil
}

// Merge stores every log in add, replacing existing days, and persists the
// result.
func (s *Service) Merge(add logstore.Logs) (logstore.Logs, error) {
	logs, err := s.Load()
	if err != nil {
		return nil, err
	}
	next := logs.Clone()
	for date, log := range add {
		log.Date = date
		next[date] = log
	}
	if err := s.store.Save(next); err != nil {
		return logs, fmt.Errorf("saving %d logs: %w", add.Len(), err)
	}
	return next, nil
}
