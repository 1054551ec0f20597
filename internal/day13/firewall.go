// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day13 simulates a packet crossing a layered firewall with
// oscillating scanners.
package day13

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Layer is a firewall layer at Depth whose scanner sweeps Range cells.
type Layer struct {
	Depth int
	Range int
}

// period is the number of picoseconds after which the scanner is back at
// the top cell.
func (l Layer) period() int {
	if l.Range <= 1 {
		return 1
	}
	return 2 * (l.Range - 1)
}

// Firewall is a list of layers.
type Firewall []Layer

// Parse reads lines of the form "depth: range".
func Parse(input string) (Firewall, error) {
	var fw Firewall
	for i, line := range puzzle.Lines(input) {
		d, r, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':' in %q", i+1, line)
		}
		depth, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return nil, fmt.Errorf("line %d: depth: %w", i+1, err)
		}
		rng, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("line %d: range: %w", i+1, err)
		}
		if rng < 1 {
			return nil, fmt.Errorf("line %d: range must be positive", i+1)
		}
		fw = append(fw, Layer{Depth: depth, Range: rng})
	}
	return fw, nil
}

// Trip sends a packet after waiting delay picoseconds. It reports whether
// the packet was caught and the summed severity (depth × range) of every
// catching layer. A catch at depth 0 adds no severity but still counts.
func (fw Firewall) Trip(delay int) (severity int, caught bool) {
	for _, l := range fw {
		if (delay+l.Depth)%l.period() == 0 {
			caught = true
			severity += l.Depth * l.Range
		}
	}
	return severity, caught
}

// Severity returns the trip severity when leaving immediately.
func (fw Firewall) Severity() int {
	s, _ := fw.Trip(0)
	return s
}

// SafeDelay returns the smallest delay for which the packet is never caught.
func (fw Firewall) SafeDelay(ctx context.Context) (int, error) {
	for delay := 0; ; delay++ {
		if err := puzzle.Check(ctx, delay); err != nil {
			return 0, err
		}
		if !fw.caughtAt(delay) {
			return delay, nil
		}
	}
}

func (fw Firewall) caughtAt(delay int) bool {
	for _, l := range fw {
		if (delay+l.Depth)%l.period() == 0 {
			return true
		}
	}
	return false
}

// Solve returns the trip severity and the smallest safe delay.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	fw, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	delay, err := fw.SafeDelay(ctx)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(fw.Severity(), delay), nil
}
