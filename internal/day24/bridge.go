// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day24 builds bridges out of magnetic components.
package day24

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Component has a port at each end.
type Component struct{ A, B int }

// Strength is the sum of both ports.
func (c Component) Strength() int { return c.A + c.B }

// Other returns the port opposite to port, and whether c has port at all.
func (c Component) Other(port int) (int, bool) {
	switch port {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	}
	return 0, false
}

// Parse reads components of the form "0/2".
func Parse(input string) ([]Component, error) {
	lines := puzzle.Lines(input)
	out := make([]Component, len(lines))
	for i, line := range lines {
		a, b, ok := strings.Cut(line, "/")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '/'", i+1)
		}
		x, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		y, err := strconv.Atoi(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = Component{x, y}
	}
	return out, nil
}

// Bridge summarizes a chain of components starting at port zero.
type Bridge struct {
	Length   int
	Strength int
}

// Best tracks the strongest bridge and the strongest among the longest.
type Best struct {
	Strongest Bridge
	Longest   Bridge
}

func (b *Best) consider(br Bridge) {
	if br.Strength > b.Strongest.Strength {
		b.Strongest = br
	}
	if br.Length > b.Longest.Length || (br.Length == b.Longest.Length && br.Strength > b.Longest.Strength) {
		b.Longest = br
	}
}

// Build explores every bridge that starts at port zero.
func Build(ctx context.Context, parts []Component) (Best, error) {
	var best Best
	used := make([]bool, len(parts))
	var visit func(port int, br Bridge) error
	visit = func(port int, br Bridge) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		best.consider(br)
		for i, c := range parts {
			if used[i] {
				continue
			}
			next, ok := c.Other(port)
			if !ok {
				continue
			}
			used[i] = true
			err := visit(next, Bridge{Length: br.Length + 1, Strength: br.Strength + c.Strength()})
			used[i] = false
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(0, Bridge{}); err != nil {
		return Best{}, err
	}
	return best, nil
}

// Solve returns the strength of the strongest bridge and of the strongest
// longest bridge.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	parts, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	best, err := Build(ctx, parts)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(best.Strongest.Strength, best.Longest.Strength), nil
}
