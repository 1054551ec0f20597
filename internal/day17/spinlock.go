// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day17 short-circuits a spinlock's circular buffer.
package day17

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// DefaultInput is the author's step size.
const DefaultInput = "371"

const (
	Insertions      = 2017
	AngryInsertions = 50_000_000
)

// AfterLast builds the buffer by inserting values 1..n, stepping forward
// step positions before each insertion, and returns the value following
// the last inserted one.
func AfterLast(step, n int) int {
	buf := make([]int, 1, n+1)
	pos := 0
	for v := 1; v <= n; v++ {
		pos = (pos+step)%len(buf) + 1
		buf = append(buf, 0)
		copy(buf[pos+1:], buf[pos:])
		buf[pos] = v
	}
	return buf[(pos+1)%len(buf)]
}

// AfterZero returns the value following 0 after n insertions. Value 0
// never moves from index 0, so only insertions at index 1 matter and the
// buffer itself is never built.
func AfterZero(ctx context.Context, step, n int) (int, error) {
	value, pos := 0, 0
	for v := 1; v <= n; v++ {
		if err := puzzle.Check(ctx, v); err != nil {
			return 0, err
		}
		pos = (pos+step)%v + 1
		if pos == 1 {
			value = v
		}
	}
	return value, nil
}

// Solve returns the value after 2017 and the value after 0 for the
// angry spinlock.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	step, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return types.Answer{}, fmt.Errorf("invalid step size: %w", err)
	}
	if step < 0 {
		return types.Answer{}, fmt.Errorf("step size must not be negative, got %d", step)
	}
	afterZero, err := AfterZero(ctx, step, AngryInsertions)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(AfterLast(step, Insertions), afterZero), nil
}
