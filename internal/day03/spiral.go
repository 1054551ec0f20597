// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day03 works with spiral memory: squares numbered outward in a
// counter-clockwise spiral starting at square 1.
package day03

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Distance returns the Manhattan distance from square n to square 1.
func Distance(n int) int {
	if n <= 1 {
		return 0
	}
	ring := 0
	for (2*ring+1)*(2*ring+1) < n {
		ring++
	}
	side := 2 * ring
	corner := (2*ring + 1) * (2*ring + 1)
	offset := (corner - n) % side
	return ring + abs(offset-ring)
}

type point struct{ x, y int }

// Walk visits the spiral squares in order, starting at square 1, and calls
// visit with each coordinate until visit returns false.
func Walk(visit func(x, y int) bool) {
	dirs := [4]point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	pos := point{}
	if !visit(pos.x, pos.y) {
		return
	}
	for leg := 0; ; leg++ {
		d := dirs[leg%4]
		for range leg/2 + 1 {
			pos = point{pos.x + d.x, pos.y + d.y}
			if !visit(pos.x, pos.y) {
				return
			}
		}
	}
}

// StressValues returns the stress test values in spiral order up to and
// including the first value larger than limit. Each square stores the sum
// of all adjacent squares already written; square 1 stores 1.
func StressValues(limit int) []int {
	grid := map[point]int{}
	var values []int
	Walk(func(x, y int) bool {
		v := 0
		if x == 0 && y == 0 {
			v = 1
		} else {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					v += grid[point{x + dx, y + dy}]
				}
			}
		}
		grid[point{x, y}] = v
		values = append(values, v)
		return v <= limit
	})
	return values
}

// FirstLarger returns the first stress test value larger than limit.
func FirstLarger(limit int) int {
	vs := StressValues(limit)
	return vs[len(vs)-1]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Solve returns the carry distance for the input square and the first
// stress test value larger than it.
func Solve(_ context.Context, input string) (types.Answer, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return types.Answer{}, fmt.Errorf("invalid square number: %w", err)
	}
	if n < 1 {
		return types.Answer{}, fmt.Errorf("square number must be positive, got %d", n)
	}
	return types.NewAnswer(Distance(n), FirstLarger(n)), nil
}
