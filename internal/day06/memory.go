// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day06 detects loops in the memory bank reallocation routine.
package day06

import (
	"context"
	"fmt"
	"slices"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Banks holds the number of blocks in each memory bank.
type Banks []int

// Parse reads whitespace separated block counts.
func Parse(input string) (Banks, error) {
	ns, err := puzzle.Ints(input)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, fmt.Errorf("no memory banks")
	}
	return Banks(ns), nil
}

// Redistribute empties the fullest bank (lowest index on ties) and hands
// its blocks out one at a time to the following banks, wrapping around.
func (b Banks) Redistribute() {
	pos := 0
	for i, n := range b {
		if n > b[pos] {
			pos = i
		}
	}
	blocks := b[pos]
	b[pos] = 0
	for i := 1; i <= blocks; i++ {
		b[(pos+i)%len(b)]++
	}
}

func (b Banks) key() string {
	return fmt.Sprint([]int(b))
}

// Cycle is the result of reallocating until a configuration repeats.
type Cycle struct {
	// Steps is the number of redistributions performed until a
	// configuration was seen for the second time.
	Steps int
	// Loop is the number of redistributions between the two sightings.
	Loop int
	// Seen lists each configuration produced, in order, ending with the repeat.
	Seen []Banks
}

// DetectLoop redistributes a copy of b until a configuration repeats.
func (b Banks) DetectLoop(ctx context.Context) (Cycle, error) {
	cur := slices.Clone(b)
	history := map[string]int{cur.key(): 0}
	var c Cycle
	for {
		cur.Redistribute()
		c.Steps++
		c.Seen = append(c.Seen, slices.Clone(cur))
		if first, ok := history[cur.key()]; ok {
			c.Loop = c.Steps - first
			return c, nil
		}
		history[cur.key()] = c.Steps
		if err := puzzle.Check(ctx, c.Steps); err != nil {
			return c, err
		}
	}
}

// Solve returns the number of redistributions before a repeat and the loop size.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	b, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	c, err := b.DetectLoop(ctx)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(c.Steps, c.Loop), nil
}
