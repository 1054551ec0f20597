// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Entry is one stored result together with the run it belongs to.
type Entry struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	types.Result
}

// HistoryOptions filters History.
type HistoryOptions struct {
	Day   int // 0 selects every day
	Limit int // 0 uses the store's configured maximum
}

// History returns stored results, newest run first and by day within a
// run.
func (s *Store) History(ctx context.Context, opts HistoryOptions) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	var where []string
	var args []any
	if opts.Day > 0 {
		where = append(where, "r.day = ?")
		args = append(args, opts.Day)
	}
	query := `SELECT u.id, u.started_at, r.day, r.title, r.part1, r.part2, r.status, r.error, r.duration_ns
		FROM results r JOIN runs u ON u.id = r.run_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY u.started_at DESC, u.rowid DESC, r.day ASC LIMIT ?"
	args = append(args, limit)

	return s.queryEntries(ctx, query, args...)
}

// Best returns, for each day, the fastest run that produced an accepted
// answer (ok or unverified).
func (s *Store) Best(ctx context.Context) ([]Entry, error) {
	all, err := s.queryEntries(ctx,
		`SELECT u.id, u.started_at, r.day, r.title, r.part1, r.part2, r.status, r.error, r.duration_ns
		 FROM results r JOIN runs u ON u.id = r.run_id
		 WHERE r.status IN (?, ?)
		 ORDER BY r.day ASC, r.duration_ns ASC, u.started_at DESC`,
		string(types.StatusOK), string(types.StatusUnverified))
	if err != nil {
		return nil, err
	}
	return firstPerDay(all), nil
}

// Latest returns the most recent accepted answer for each day.
func (s *Store) Latest(ctx context.Context) ([]Entry, error) {
	all, err := s.queryEntries(ctx,
		`SELECT u.id, u.started_at, r.day, r.title, r.part1, r.part2, r.status, r.error, r.duration_ns
		 FROM results r JOIN runs u ON u.id = r.run_id
		 WHERE r.status IN (?, ?)
		 ORDER BY r.day ASC, u.started_at DESC, u.rowid DESC`,
		string(types.StatusOK), string(types.StatusUnverified))
	if err != nil {
		return nil, err
	}
	return firstPerDay(all), nil
}

// Answers returns the latest accepted answer per day, suitable for
// verifying later runs.
func (s *Store) Answers(ctx context.Context) (map[int]types.Answer, error) {
	latest, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]types.Answer, len(latest))
	for _, e := range latest {
		out[e.Day] = e.Answer
	}
	return out, nil
}

// Runs returns the number of stored runs.
func (s *Store) Runs(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return n, nil
}

// Prune deletes all but the newest keep runs and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	return int(n), nil
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e        Entry
			started  int64
			duration int64
			status   string
		)
		if err := rows.Scan(&e.RunID, &started, &e.Day, &e.Title,
			&e.Answer.Part1, &e.Answer.Part2, &status, &e.Err, &duration); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		e.StartedAt = time.Unix(0, started).UTC()
		e.Duration = time.Duration(duration)
		e.Status = types.Status(status)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return out, nil
}

// firstPerDay keeps the first entry of each day from a day-ordered list.
func firstPerDay(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if len(out) == 0 || out[len(out)-1].Day != e.Day {
			out = append(out, e)
		}
	}
	return out
}
