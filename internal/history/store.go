// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists finished conversion jobs in a local SQLite
// database. Implements: prd005-history (R1-R3);
//
//	docs/ARCHITECTURE § History.
package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperdesk/pkg/types"
)

const defaultMaxEntries = 200

// Store manages the conversion history database. Safe for use from the
// worker goroutine; database/sql serializes access.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// NewStore opens or creates the history database at cfg.Path and creates
// the schema when missing.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}

	s := &Store{db: db, maxEntries: maxEntries}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			backend TEXT NOT NULL,
			accurate INTEGER NOT NULL,
			status TEXT NOT NULL,
			message TEXT,
			duration_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one finished job and prunes the table to the configured
// cap, oldest entries first.
func (s *Store) Record(e types.HistoryEntry) error {
	accurate := 0
	if e.Accurate {
		accurate = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO conversions (path, backend, accurate, status, message, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Path, e.Backend, accurate, string(e.Status), e.Message,
		e.Duration.Milliseconds(), e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM conversions WHERE rowid NOT IN
		 (SELECT rowid FROM conversions ORDER BY rowid DESC LIMIT ?)`,
		s.maxEntries,
	)
	if err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first. n <= 0 means the configured
// cap.
func (s *Store) Recent(n int) ([]types.HistoryEntry, error) {
	if n <= 0 {
		n = s.maxEntries
	}

	rows, err := s.db.Query(
		`SELECT path, backend, accurate, status, message, duration_ms, created_at
		 FROM conversions ORDER BY rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var (
			e          types.HistoryEntry
			accurate   int
			durationMS int64
			createdAt  string
			status     string
		)
		if err := rows.Scan(&e.Path, &e.Backend, &accurate, &status, &e.Message, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Accurate = accurate != 0
		e.Status = types.ConversionStatus(status)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// exportDoc is the YAML document shape for ExportYAML.
type exportDoc struct {
	Conversions []types.HistoryEntry `yaml:"conversions"`
}

// ExportYAML writes the retained history, newest first, as a YAML document.
func (s *Store) ExportYAML(w io.Writer) error {
	entries, err := s.Recent(0)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(exportDoc{Conversions: entries}); err != nil {
		return fmt.Errorf("encoding history export: %w", err)
	}
	return nil
}
