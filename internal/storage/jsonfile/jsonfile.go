package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/storage"
)

// Store implements storage.Storage as a single JSON file in the data directory.
type Store struct {
	path string // e.g. ~/.protocolctl/neuro-protocol-logs.json
}

// New creates a new JSON file storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	return &Store{path: filepath.Join(dataDir, logstore.SlotName+".json")}, nil
}

// Path returns the file holding the slot.
func (s *Store) Path() string {
	return s.path
}

// Close is a no-op for the JSON file backend.
func (s *Store) Close() error {
	return nil
}

// Load reads and decodes the slot file. A missing file is an empty store.
func (s *Store) Load() (logstore.Logs, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return logstore.Logs{}, nil
		}
		return nil, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}
	logs, err := logstore.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return logs, nil
}

// Save encodes logs and atomically replaces the slot file.
func (s *Store) Save(logs logstore.Logs) error {
	data, err := logstore.Encode(logs)
	if err != nil {
		return fmt.Errorf("%w: encoding logs: %v", storage.ErrStorage, err)
	}
	return s.atomicWrite(append(data, '\n'))
}

// atomicWrite writes data to a temp file then renames it over the slot file.
func (s *Store) atomicWrite(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}
