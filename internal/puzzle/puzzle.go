// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package puzzle defines the uniform shape of a daily puzzle solver and a
// registry that maps calendar days to solvers.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// FirstDay and LastDay bound the puzzle calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

// ErrUnknownDay is returned when a requested day has no registered solver.
var ErrUnknownDay = errors.New("unknown day")

// SolveFunc solves both parts of a puzzle for the given input text.
type SolveFunc func(ctx context.Context, input string) (types.Answer, error)

// Puzzle describes a single day of the calendar.
type Puzzle struct {
	Day   int
	Title string
	Solve SolveFunc

	// DefaultInput is used when no input file exists. Some days have a
	// short inline input instead of a file.
	DefaultInput string
}

// Name returns the canonical file stem for the day, e.g. "day07".
func (p Puzzle) Name() string {
	return Name(p.Day)
}

// Name returns the canonical file stem for day, e.g. "day07".
func Name(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// Registry maps days to puzzles.
type Registry struct {
	puzzles map[int]Puzzle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[int]Puzzle)}
}

// Register adds p to the registry. The day must lie within the calendar
// and must not already be registered.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < FirstDay || p.Day > LastDay {
		return fmt.Errorf("day %d outside calendar %d-%d", p.Day, FirstDay, LastDay)
	}
	if p.Solve == nil {
		return fmt.Errorf("day %d: nil solver", p.Day)
	}
	if _, exists := r.puzzles[p.Day]; exists {
		return fmt.Errorf("day %d already registered", p.Day)
	}
	r.puzzles[p.Day] = p
	return nil
}

// MustRegister is like Register but panics on error. It is intended for
// static registration tables.
func (r *Registry) MustRegister(p Puzzle) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the puzzle for day.
func (r *Registry) Lookup(day int) (Puzzle, bool) {
	p, ok := r.puzzles[day]
	return p, ok
}

// Days returns all registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.puzzles))
	for d := range r.puzzles {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Puzzles returns all registered puzzles ordered by day.
func (r *Registry) Puzzles() []Puzzle {
	days := r.Days()
	out := make([]Puzzle, len(days))
	for i, d := range days {
		out[i] = r.puzzles[d]
	}
	return out
}

// ParseDays resolves day selectors into a sorted, de-duplicated list of
// registered days. Accepted selectors are "7", "07", "day07", ranges such
// as "1-5", and "all". An empty argument list selects all days.
func (r *Registry) ParseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return r.Days(), nil
	}

	seen := make(map[int]bool)
	for _, arg := range args {
		for _, sel := range strings.Split(arg, ",") {
			sel = strings.ToLower(strings.TrimSpace(sel))
			if sel == "" {
				continue
			}
			if sel == "all" {
				for _, d := range r.Days() {
					seen[d] = true
				}
				continue
			}

			lo, hi, err := parseRange(sel)
			if err != nil {
				return nil, err
			}
			for d := lo; d <= hi; d++ {
				if _, ok := r.puzzles[d]; !ok {
					return nil, fmt.Errorf("%w: %d", ErrUnknownDay, d)
				}
				seen[d] = true
			}
		}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days, nil
}

func parseRange(sel string) (int, int, error) {
	if from, to, ok := strings.Cut(sel, "-"); ok {
		lo, err := parseDay(from)
		if err != nil {
			return 0, 0, err
		}
		hi, err := parseDay(to)
		if err != nil {
			return 0, 0, err
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("invalid day range %q", sel)
		}
		return lo, hi, nil
	}
	d, err := parseDay(sel)
	return d, d, err
}

func parseDay(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "day")
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	if d < FirstDay || d > LastDay {
		return 0, fmt.Errorf("day %d outside calendar %d-%d", d, FirstDay, LastDay)
	}
	return d, nil
}
