// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner solves puzzle days concurrently, verifies the answers and
// reports the outcome.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/aoc2017/internal/input"
	"github.com/pdiddy/aoc2017/internal/logging"
	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Options controls a run.
type Options struct {
	Input    types.InputConfig
	Answers  Answers
	Parallel int           // maximum concurrent days; 0 means runtime.NumCPU()
	Timeout  time.Duration // per day; 0 means no limit

	// Load overrides input loading, mainly for tests.
	Load func(types.InputConfig, puzzle.Puzzle) (string, error)
}

// Run solves the given days and returns one result per day, ordered by
// day. All days must be registered. A day that fails or times out does not
// stop the others; Run itself only fails when ctx is cancelled, in which
// case the results gathered so far are still returned.
func Run(ctx context.Context, reg *puzzle.Registry, days []int, opts Options) ([]types.Result, error) {
	puzzles := make([]puzzle.Puzzle, len(days))
	for i, d := range days {
		p, ok := reg.Lookup(d)
		if !ok {
			return nil, fmt.Errorf("%w: %d", puzzle.ErrUnknownDay, d)
		}
		puzzles[i] = p
	}
	if opts.Parallel <= 0 {
		opts.Parallel = runtime.NumCPU()
	}
	if opts.Load == nil {
		opts.Load = input.Load
	}

	log := logging.WithComponent("runner")
	results := make([]types.Result, len(puzzles))
	var g errgroup.Group
	g.SetLimit(opts.Parallel)
	for i, p := range puzzles {
		g.Go(func() error {
			results[i] = solveOne(ctx, p, opts)
			log.Debug().
				Int("day", p.Day).
				Str("status", string(results[i].Status)).
				Dur("duration", results[i].Duration).
				Msg("solved")
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func solveOne(ctx context.Context, p puzzle.Puzzle, opts Options) (res types.Result) {
	res = types.Result{Day: p.Day, Title: p.Title}
	if err := ctx.Err(); err != nil {
		res.Status, res.Err = types.StatusFailed, err.Error()
		return res
	}

	text, err := opts.Load(opts.Input, p)
	if err != nil {
		res.Status, res.Err = types.StatusFailed, err.Error()
		return res
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Status, res.Err = types.StatusFailed, fmt.Sprintf("panic: %v", r)
		}
	}()

	answer, err := p.Solve(ctx, text)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (err == nil && errors.Is(ctx.Err(), context.DeadlineExceeded)):
		res.Status, res.Err = types.StatusTimeout, fmt.Sprintf("exceeded %v", opts.Timeout)
	case err != nil:
		res.Status, res.Err = types.StatusFailed, err.Error()
	default:
		res.Answer = answer
		res.Status = opts.Answers.Verify(p.Day, answer)
	}
	return res
}
