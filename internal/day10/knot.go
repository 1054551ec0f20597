// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day10 ties knots in a circular list of marks.
package day10

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/aoc2017/internal/knothash"
	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// DefaultInput is the author's puzzle input.
const DefaultInput = "70,66,255,2,48,0,54,48,80,141,244,254,160,108,1,41"

// Check performs a single round over a ring of the given size using the
// comma separated lengths and returns the product of the first two marks.
func Check(size int, lengths string) (int, error) {
	ls, err := puzzle.Ints(lengths)
	if err != nil {
		return 0, err
	}
	for _, l := range ls {
		if l < 0 || l > size {
			return 0, fmt.Errorf("length %d exceeds ring size %d", l, size)
		}
	}
	r := knothash.NewRing(size)
	r.Round(ls)
	return r.Marks[0] * r.Marks[1], nil
}

// Solve returns the single round check value and the full knot hash of
// the input treated as ASCII.
func Solve(_ context.Context, input string) (types.Answer, error) {
	input = strings.TrimSpace(input)
	check, err := Check(knothash.Size, input)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(check, knothash.Hex(input)), nil
}
