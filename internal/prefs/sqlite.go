package prefs

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteKV implements KV on a single-table SQLite database.
//
// If the database cannot be opened, the store disables itself and all
// operations become no-ops: personalization silently degrades to empty
// state instead of breaking search.
type SQLiteKV struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// DefaultPath returns the default database location, ~/.utilsearch/prefs.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".utilsearch", "prefs.db"), nil
}

// NewSQLiteKV creates a store backed by the database at dbPath. The parent
// directory is created on Init if missing.
func NewSQLiteKV(dbPath string) *SQLiteKV {
	return &SQLiteKV{dbPath: dbPath, enabled: true}
}

// Init opens the database and creates the schema. If initialization fails,
// the store is disabled and subsequent operations become no-ops.
func (s *SQLiteKV) Init() error {
	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = fmt.Errorf("failed to create prefs directory: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open prefs database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping prefs database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			db.Close()
			return
		}

		if _, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS prefs (
				key        TEXT PRIMARY KEY,
				value      TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)
		`); err != nil {
			initErr = fmt.Errorf("failed to create prefs schema: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			db.Close()
			return
		}

		s.db = db
	})
	return initErr
}

func (s *SQLiteKV) Get(key string) (string, bool, error) {
	if !s.enabled || s.db == nil {
		return "", false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read pref %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(key, value string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write pref %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Delete(key string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM prefs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete pref %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close prefs database: %w", err)
	}
	s.db = nil
	return nil
}
