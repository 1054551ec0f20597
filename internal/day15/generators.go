// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day15 judges pairs of values from two dueling generators.
package day15

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// DefaultInput is the author's generator seeds.
const DefaultInput = "Generator A starts with 634\nGenerator B starts with 301"

const (
	FactorA = 16807
	FactorB = 48271
	modulus = 2147483647

	// Pairs judged by each part.
	Pairs      = 40_000_000
	PickyPairs = 5_000_000
)

// Generator produces value = value × factor mod 2147483647, optionally
// skipping values that are not multiples of Multiple.
type Generator struct {
	Value    uint64
	Factor   uint64
	Multiple uint64
}

// New returns a generator that yields every value.
func New(factor, seed uint64) *Generator {
	return &Generator{Value: seed, Factor: factor, Multiple: 1}
}

// Picky returns a generator that yields only multiples of m.
func Picky(factor, seed, m uint64) *Generator {
	return &Generator{Value: seed, Factor: factor, Multiple: m}
}

// Next advances the generator and returns the next accepted value.
func (g *Generator) Next() uint64 {
	for {
		g.Value = g.Value * g.Factor % modulus
		if g.Value%g.Multiple == 0 {
			return g.Value
		}
	}
}

// Judge compares the lowest 16 bits of n pairs and counts matches.
func Judge(ctx context.Context, a, b *Generator, n int) (int, error) {
	matches := 0
	for i := range n {
		if err := puzzle.Check(ctx, i); err != nil {
			return 0, err
		}
		if a.Next()&0xffff == b.Next()&0xffff {
			matches++
		}
	}
	return matches, nil
}

// ParseSeeds reads the starting values of generators A and B. It accepts
// either the two descriptive lines or two bare numbers.
func ParseSeeds(input string) (uint64, uint64, error) {
	var nums []uint64
	for _, f := range strings.Fields(input) {
		var n uint64
		if _, err := fmt.Sscan(f, &n); err == nil {
			nums = append(nums, n)
		}
	}
	if len(nums) != 2 {
		return 0, 0, fmt.Errorf("expected two generator seeds, found %d", len(nums))
	}
	return nums[0], nums[1], nil
}

// Solve returns the judge's count for plain and picky generators.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	seedA, seedB, err := ParseSeeds(input)
	if err != nil {
		return types.Answer{}, err
	}
	plain, err := Judge(ctx, New(FactorA, seedA), New(FactorB, seedB), Pairs)
	if err != nil {
		return types.Answer{}, err
	}
	picky, err := Judge(ctx, Picky(FactorA, seedA, 4), Picky(FactorB, seedB, 8), PickyPairs)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(plain, picky), nil
}
