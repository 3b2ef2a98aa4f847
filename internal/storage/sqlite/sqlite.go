package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
	"go.uber.org/multierr"
)

// Store implements storage.Storage as a named row in a SQLite database via Turso/libSQL.
type Store struct {
	db   *sql.DB
	slot string
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "protocolctl.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The pragma returns the new mode as a row.
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		return nil, multierr.Append(
			fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err),
			db.Close(),
		)
	}

	if err := createSchema(db); err != nil {
		return nil, multierr.Append(err, db.Close())
	}

	return &Store{db: db, slot: logstore.SlotName}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			name       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads and decodes the slot row. A missing row is an empty store.
func (s *Store) Load() (logstore.Logs, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE name = ?", s.slot).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return logstore.Logs{}, nil
		}
		return nil, fmt.Errorf("%w: querying slot: %v", storage.ErrStorage, err)
	}

	logs, err := logstore.Decode([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("decoding slot %s: %w", s.slot, err)
	}
	return logs, nil
}

// Save replaces the slot row inside a transaction.
func (s *Store) Save(logs logstore.Logs) (err error) {
	data, err := logstore.Encode(logs)
	if err != nil {
		return fmt.Errorf("%w: encoding logs: %v", storage.ErrStorage, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = multierr.Append(err, rbErr)
			}
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err = tx.Exec(
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.slot, string(data), now,
	); err != nil {
		return fmt.Errorf("%w: writing slot: %v", storage.ErrStorage, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}
