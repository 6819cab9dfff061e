package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite is a Backend that keeps every collection snapshot in a single
// key/blob table. It exists for setups where one file is easier to move
// around than a directory of json files.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath and prepares the
// collections table.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS collections (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLite) Read(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %q: %w", key, err)
	}
	return data, nil
}

func (s *SQLite) Write(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO collections (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	if err != nil {
		return fmt.Errorf("write collection %q: %w", key, err)
	}
	return nil
}
