// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day05 executes a maze of jump offsets until the instruction
// pointer leaves the list.
package day05

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Program is a list of jump offsets.
type Program []int

// Parse reads one jump offset per line.
func Parse(input string) (Program, error) {
	lines := puzzle.Lines(input)
	p := make(Program, len(lines))
	for i, l := range lines {
		n, err := strconv.Atoi(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		p[i] = n
	}
	return p, nil
}

// Executor steps through a copy of a program. After each jump the offset
// just used is incremented; in strange mode offsets of three or more are
// decremented instead.
type Executor struct {
	offsets []int
	ip      int
	strange bool
}

// Exec returns an executor for p.
func (p Program) Exec() *Executor {
	return &Executor{offsets: append([]int(nil), p...)}
}

// StrangeExec returns an executor for p using the stranger offset rule.
func (p Program) StrangeExec() *Executor {
	e := p.Exec()
	e.strange = true
	return e
}

// Next performs one jump and returns the instruction pointer it jumped
// from. It returns false once the pointer is outside the program.
func (e *Executor) Next() (int, bool) {
	if e.ip < 0 || e.ip >= len(e.offsets) {
		return 0, false
	}
	ip := e.ip
	jump := e.offsets[ip]
	if e.strange && jump >= 3 {
		e.offsets[ip]--
	} else {
		e.offsets[ip]++
	}
	e.ip += jump
	return ip, true
}

// Steps runs the executor to completion and returns the number of jumps.
func (e *Executor) Steps(ctx context.Context) (int, error) {
	n := 0
	for {
		if _, ok := e.Next(); !ok {
			return n, nil
		}
		n++
		if err := puzzle.Check(ctx, n); err != nil {
			return n, err
		}
	}
}

// Solve returns the number of steps to escape under both offset rules.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	p, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	a, err := p.Exec().Steps(ctx)
	if err != nil {
		return types.Answer{}, err
	}
	b, err := p.StrangeExec().Steps(ctx)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(a, b), nil
}
