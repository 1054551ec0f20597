// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day11 measures distances on a hexagonal grid.
package day11

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Hex is an axial grid coordinate.
type Hex struct{ Q, R int }

var steps = map[string]Hex{
	"n":  {0, -1},
	"nw": {-1, 0},
	"ne": {1, -1},
	"s":  {0, 1},
	"sw": {-1, 1},
	"se": {1, 0},
}

// Add returns the coordinate one step in direction d from h.
func (h Hex) Add(d Hex) Hex {
	return Hex{h.Q + d.Q, h.R + d.R}
}

// Distance returns the number of steps from the origin to h.
func (h Hex) Distance() int {
	return (abs(h.Q) + abs(h.Q+h.R) + abs(h.R)) / 2
}

// Path is a sequence of single steps.
type Path []Hex

// Parse reads comma separated directions.
func Parse(input string) (Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	var p Path
	for _, d := range strings.Split(input, ",") {
		step, ok := steps[strings.TrimSpace(d)]
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", d)
		}
		p = append(p, step)
	}
	return p, nil
}

// Walk returns the final distance and the furthest distance reached.
func (p Path) Walk() (final, furthest int) {
	var pos Hex
	for _, s := range p {
		pos = pos.Add(s)
		furthest = max(furthest, pos.Distance())
	}
	return pos.Distance(), furthest
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Solve returns the final and furthest distance of the child process.
func Solve(_ context.Context, input string) (types.Answer, error) {
	p, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	final, furthest := p.Walk()
	return types.NewAnswer(final, furthest), nil
}
