// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day16 performs the permutation promenade: a dance of programs
// named a through p.
package day16

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Programs is the number of dancers in the puzzle.
const Programs = 16

// Dances is the number of repetitions in part two.
const Dances = 1_000_000_000

// MoveKind identifies a dance move.
type MoveKind byte

const (
	Spin     MoveKind = 's'
	Exchange MoveKind = 'x'
	Partner  MoveKind = 'p'
)

// Move is a single dance move. Spin uses A as the size, Exchange swaps
// positions A and B, Partner swaps programs named X and Y.
type Move struct {
	Kind MoveKind
	A, B int
	X, Y byte
}

// ParseMove reads a move such as "s1", "x3/4" or "pe/b".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, fmt.Errorf("malformed move %q", s)
	}
	m := Move{Kind: MoveKind(s[0])}
	args := s[1:]
	switch m.Kind {
	case Spin:
		n, err := strconv.Atoi(args)
		if err != nil {
			return Move{}, fmt.Errorf("spin size in %q: %w", s, err)
		}
		m.A = n
	case Exchange:
		a, b, ok := strings.Cut(args, "/")
		if !ok {
			return Move{}, fmt.Errorf("malformed exchange %q", s)
		}
		var err error
		if m.A, err = strconv.Atoi(a); err != nil {
			return Move{}, fmt.Errorf("exchange position in %q: %w", s, err)
		}
		if m.B, err = strconv.Atoi(b); err != nil {
			return Move{}, fmt.Errorf("exchange position in %q: %w", s, err)
		}
	case Partner:
		if len(args) != 3 || args[1] != '/' {
			return Move{}, fmt.Errorf("malformed partner %q", s)
		}
		m.X, m.Y = args[0], args[2]
	default:
		return Move{}, fmt.Errorf("unknown move %q", s)
	}
	return m, nil
}

// validate checks that the move can be applied to n dancers.
func (m Move) validate(n int) error {
	inRange := func(i int) bool { return i >= 0 && i < n }
	switch m.Kind {
	case Spin:
		if m.A < 0 || m.A > n {
			return fmt.Errorf("spin size %d out of range for %d programs", m.A, n)
		}
	case Exchange:
		if !inRange(m.A) || !inRange(m.B) {
			return fmt.Errorf("exchange %d/%d out of range for %d programs", m.A, m.B, n)
		}
	case Partner:
		last := byte('a' + n - 1)
		if m.X < 'a' || m.X > last || m.Y < 'a' || m.Y > last {
			return fmt.Errorf("unknown dancer in partner %c/%c", m.X, m.Y)
		}
	}
	return nil
}

// Apply performs the move on the line of dancers in place.
func (m Move) Apply(line []byte) {
	n := len(line)
	switch m.Kind {
	case Spin:
		rotated := append(append([]byte(nil), line[n-m.A:]...), line[:n-m.A]...)
		copy(line, rotated)
	case Exchange:
		line[m.A], line[m.B] = line[m.B], line[m.A]
	case Partner:
		i, j := strings.IndexByte(string(line), m.X), strings.IndexByte(string(line), m.Y)
		line[i], line[j] = line[j], line[i]
	}
}

// Dance is a sequence of moves.
type Dance []Move

// Parse reads comma separated moves.
func Parse(input string) (Dance, error) {
	var d Dance
	for i, s := range strings.Split(strings.TrimSpace(input), ",") {
		m, err := ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		d = append(d, m)
	}
	return d, nil
}

// Perform dances n programs through the moves the given number of times
// and returns the final order. Repeated orders are detected so that only
// one cycle of dances is actually performed.
func (d Dance) Perform(ctx context.Context, n, times int) (string, error) {
	for i, m := range d {
		if err := m.validate(n); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	line := make([]byte, n)
	for i := range line {
		line[i] = byte('a' + i)
	}
	seen := map[string]int{string(line): 0}
	history := []string{string(line)}
	for round := 1; round <= times; round++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for _, m := range d {
			m.Apply(line)
		}
		key := string(line)
		if first, ok := seen[key]; ok {
			cycle := round - first
			return history[first+(times-first)%cycle], nil
		}
		seen[key] = round
		history = append(history, key)
	}
	return string(line), nil
}

// Solve returns the order after one dance and after a billion dances.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	d, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	once, err := d.Perform(ctx, Programs, 1)
	if err != nil {
		return types.Answer{}, err
	}
	many, err := d.Perform(ctx, Programs, Dances)
	if err != nil {
		return types.Answer{}, err
	}
	return types.Answer{Part1: once, Part2: many}, nil
}
