package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const slotsSchema = `CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteSlot stores keys as rows of a single table in a SQLite database file.
type SQLiteSlot struct {
	path string
	db   *sql.DB
}

func NewSQLiteSlot(path string) *SQLiteSlot {
	return &SQLiteSlot{
		path: path,
	}
}

func (s *SQLiteSlot) Init() error {
	// Create data directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(slotsSchema); err != nil {
		return fmt.Errorf("failed to create slots table: %w", err)
	}
	return nil
}

func (s *SQLiteSlot) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteSlot) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteSlot) Read(key string) ([]byte, error) {
	// Reading never creates the database file.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, ErrSlotEmpty
	}
	if err := s.open(); err != nil {
		return nil, err
	}

	exists, err := s.tableExists("slots")
	if err != nil {
		return nil, fmt.Errorf("failed to inspect database: %w", err)
	}
	if !exists {
		return nil, ErrSlotEmpty
	}

	var value []byte
	err = s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}
	return value, nil
}

func (s *SQLiteSlot) Write(key string, data []byte) error {
	if err := s.Init(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO slots (key, value, updated_at) VALUES (?, ?, ?)",
		key, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

func (s *SQLiteSlot) GetConfigPath() string {
	return s.path
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func (s *SQLiteSlot) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
