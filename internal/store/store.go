// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists solve runs in a SQLite database and answers
// questions about past runs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/aoc2017/pkg/types"
)

const (
	// DefaultDataDir holds the database when no directory is configured.
	DefaultDataDir = "data"
	dbFile         = "aoc2017.db"

	defaultMaxResults = 50
)

// Store manages the run history database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// Open opens or creates the history database at dataDir/aoc2017.db and
// creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dataDir: dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, dbFile)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			days INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			day INTEGER NOT NULL,
			title TEXT,
			part1 TEXT,
			part2 TEXT,
			status TEXT NOT NULL,
			error TEXT,
			duration_ns INTEGER NOT NULL,
			PRIMARY KEY (run_id, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_day ON results(day)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run and its results in a single transaction and
// returns the new run's identifier.
func (s *Store) Record(ctx context.Context, startedAt time.Time, results []types.Result) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var elapsed time.Duration
	for _, r := range results {
		elapsed += r.Duration
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, elapsed_ns, days) VALUES (?, ?, ?, ?)`,
		id, startedAt.UnixNano(), int64(elapsed), len(results),
	); err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, day, title, part1, part2, status, error, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx,
			id, r.Day, r.Title, r.Answer.Part1, r.Answer.Part2,
			string(r.Status), r.Err, int64(r.Duration),
		); err != nil {
			return "", fmt.Errorf("inserting result for day %d: %w", r.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}
