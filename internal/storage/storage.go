package storage

import (
	"errors"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound = errors.New("log not found")
	ErrStorage  = errors.New("storage error")

	// ErrValidation is returned when a change carries an out-of-range value.
	ErrValidation = dailylog.ErrInvalid

	// ErrMalformed is returned by Load when the persisted slot cannot be decoded.
	ErrMalformed = logstore.ErrMalformed
)

// Storage persists the whole log store as a single named slot.
//
// Implementations replace the slot atomically on Save: a reader either sees
// the previous store or the new one, never a mix of both.
type Storage interface {
	// Load returns the persisted store, or an empty store when nothing has
	// been saved yet. Undecodable data yields an error wrapping ErrMalformed.
	Load() (logstore.Logs, error)

	// Save replaces the persisted store with logs.
	Save(logs logstore.Logs) error

	// Close releases any resources held by the backend.
	Close() error
}
