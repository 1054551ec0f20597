// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

func echo(_ context.Context, in string) (types.Answer, error) {
	return types.NewAnswer(in, len(in)), nil
}

func blockUntilDone(ctx context.Context, _ string) (types.Answer, error) {
	<-ctx.Done()
	return types.Answer{}, ctx.Err()
}

func fail(context.Context, string) (types.Answer, error) {
	return types.Answer{}, errors.New("no evenly divisible pair")
}

func explode(context.Context, string) (types.Answer, error) {
	panic("index out of range")
}

func testRegistry(t *testing.T) *puzzle.Registry {
	t.Helper()
	r := puzzle.NewRegistry()
	for _, p := range []puzzle.Puzzle{
		{Day: 1, Title: "Echo", Solve: echo, DefaultInput: "abc"},
		{Day: 2, Title: "Slow", Solve: blockUntilDone, DefaultInput: "x"},
		{Day: 3, Title: "Broken", Solve: fail, DefaultInput: "x"},
		{Day: 4, Title: "Panics", Solve: explode, DefaultInput: "x"},
		{Day: 5, Title: "No input", Solve: echo},
	} {
		require.NoError(t, r.Register(p))
	}
	return r
}

func testOptions(t *testing.T) Options {
	return Options{
		Input:    types.InputConfig{InputsDir: t.TempDir()},
		Parallel: 2,
		Timeout:  50 * time.Millisecond,
	}
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	results, err := Run(context.Background(), testRegistry(t), []int{1, 2, 3, 4, 5}, testOptions(t))
	require.NoError(t, err)
	require.Len(t, results, 5)

	want := []types.Status{
		types.StatusUnverified,
		types.StatusTimeout,
		types.StatusFailed,
		types.StatusFailed,
		types.StatusFailed,
	}
	for i, r := range results {
		assert.Equal(t, i+1, r.Day)
		assert.Equal(t, want[i], r.Status, "day %d: %s", r.Day, r.Err)
	}
	assert.Equal(t, types.Answer{Part1: "abc", Part2: "3"}, results[0].Answer)
	assert.Equal(t, "no evenly divisible pair", results[2].Err)
	assert.Contains(t, results[3].Err, "panic")
	assert.Contains(t, results[4].Err, "no input")
}

func TestRunLateSolverTimesOut(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ignoresContext := func(context.Context, string) (types.Answer, error) {
		time.Sleep(100 * time.Millisecond)
		return types.NewAnswer(1, 2), nil
	}
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(puzzle.Puzzle{Day: 6, Title: "Stubborn", Solve: ignoresContext, DefaultInput: "x"}))

	results, err := Run(context.Background(), r, []int{6}, testOptions(t))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, types.StatusTimeout, results[0].Status)
	assert.Equal(t, "exceeded 50ms", results[0].Err)
	assert.Empty(t, results[0].Answer)
	assert.GreaterOrEqual(t, results[0].Duration, 100*time.Millisecond)
}

func TestRunVerifiesAnswers(t *testing.T) {
	opts := testOptions(t)
	opts.Answers = Answers{1: {Part1: "abc", Part2: "3"}}
	results, err := Run(context.Background(), testRegistry(t), []int{1}, opts)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, results[0].Status)

	opts.Answers = Answers{1: {Part1: "abd"}}
	results, err = Run(context.Background(), testRegistry(t), []int{1}, opts)
	require.NoError(t, err)
	assert.Equal(t, types.StatusWrong, results[0].Status)
}

func TestRunUnknownDay(t *testing.T) {
	_, err := Run(context.Background(), testRegistry(t), []int{1, 9}, testOptions(t))
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRunReadsInputFiles(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.Input.InputsDir, "day05.txt"), []byte("hello\n"), 0o644))
	results, err := Run(context.Background(), testRegistry(t), []int{5}, opts)
	require.NoError(t, err)
	assert.Equal(t, "hello", results[0].Answer.Part1)
}

func TestRunRespectsParallelLimit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var running, peak int32
	solve := func(context.Context, string) (types.Answer, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return types.Answer{}, nil
	}
	r := puzzle.NewRegistry()
	days := make([]int, 0, 10)
	for d := 1; d <= 10; d++ {
		require.NoError(t, r.Register(puzzle.Puzzle{Day: d, Solve: solve, DefaultInput: "x"}))
		days = append(days, d)
	}
	opts := testOptions(t)
	opts.Parallel = 3

	results, err := Run(context.Background(), r, days, opts)
	require.NoError(t, err)
	assert.Len(t, results, 10)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRunCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, testRegistry(t), []int{1, 2}, testOptions(t))
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	assert.Equal(t, types.StatusFailed, results[0].Status)
}

func TestPrint(t *testing.T) {
	results := []types.Result{
		{Day: 1, Title: "Inverse Captcha", Answer: types.Answer{Part1: "1", Part2: "2"}, Status: types.StatusOK, Duration: time.Millisecond},
		{Day: 3, Title: "Spiral Memory", Status: types.StatusFailed, Err: "boom"},
	}
	var buf bytes.Buffer
	s := Print(&buf, results)

	out := buf.String()
	assert.Contains(t, out, "DAY")
	assert.Contains(t, out, "Inverse Captcha")
	assert.Contains(t, out, "failed (boom)")
	assert.Contains(t, out, "Summary: 1/2 solved (1 ok, 0 wrong, 0 unverified, 1 failed, 0 timeout)")
	assert.True(t, s.HasFailures())
	assert.Equal(t, 1, s.Solved())
}
