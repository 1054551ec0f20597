// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day12 finds connected groups in a village of programs linked by pipes.
package day12

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Program is a village program and the programs it can talk to directly.
type Program struct {
	ID    int
	Pipes []int
}

// ParseProgram reads a line such as "2 <-> 0, 3, 4".
func ParseProgram(line string) (Program, error) {
	id, rest, ok := strings.Cut(line, "<->")
	if !ok {
		return Program{}, fmt.Errorf("missing <-> in %q", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Program{}, fmt.Errorf("program id in %q: %w", line, err)
	}
	pipes, err := puzzle.Ints(rest)
	if err != nil {
		return Program{}, fmt.Errorf("pipes of %d: %w", n, err)
	}
	return Program{ID: n, Pipes: pipes}, nil
}

// Village is the pipe graph keyed by program id.
type Village struct {
	Programs []Program
	index    map[int]int
}

// Parse reads one program per line.
func Parse(input string) (*Village, error) {
	v := &Village{index: make(map[int]int)}
	for i, line := range puzzle.Lines(input) {
		p, err := ParseProgram(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		v.index[p.ID] = len(v.Programs)
		v.Programs = append(v.Programs, p)
	}
	return v, nil
}

// Group returns the sorted ids of all programs reachable from id.
func (v *Village) Group(id int) []int {
	seen := v.reach(id, map[int]bool{})
	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func (v *Village) reach(id int, seen map[int]bool) map[int]bool {
	stack := []int{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		if i, ok := v.index[cur]; ok {
			stack = append(stack, v.Programs[i].Pipes...)
		}
	}
	return seen
}

// CountGroups returns the number of disjoint groups.
func (v *Village) CountGroups() int {
	seen := map[int]bool{}
	n := 0
	for _, p := range v.Programs {
		if !seen[p.ID] {
			v.reach(p.ID, seen)
			n++
		}
	}
	return n
}

// Solve returns the size of program 0's group and the number of groups.
func Solve(_ context.Context, input string) (types.Answer, error) {
	v, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(len(v.Group(0)), v.CountGroups()), nil
}
