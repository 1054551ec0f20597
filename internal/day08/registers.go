// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day08 runs conditional register increment and decrement
// instructions.
package day08

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// ErrNoWrites is returned when no instruction's condition ever held, so no
// register was written.
var ErrNoWrites = errors.New("no register was ever written")

// Comparison is a conditional operator.
type Comparison string

const (
	Eq Comparison = "=="
	Ne Comparison = "!="
	Lt Comparison = "<"
	Le Comparison = "<="
	Gt Comparison = ">"
	Ge Comparison = ">="
)

// Holds reports whether "a op b" is true.
func (c Comparison) Holds(a, b int) bool {
	switch c {
	case Eq:
		return a == b
	case Ne:
		return a != b
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	}
	return false
}

// Instruction modifies Target by Delta when the condition on Check holds.
// Decrements are stored as negative deltas.
type Instruction struct {
	Target  string
	Delta   int
	Check   string
	Compare Comparison
	Operand int
}

// ParseInstruction reads a line such as "c dec -10 if a >= 1".
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	if len(f) != 7 || f[3] != "if" {
		return Instruction{}, fmt.Errorf("malformed instruction %q", line)
	}
	delta, err := strconv.Atoi(f[2])
	if err != nil {
		return Instruction{}, fmt.Errorf("amount in %q: %w", line, err)
	}
	switch f[1] {
	case "inc":
	case "dec":
		delta = -delta
	default:
		return Instruction{}, fmt.Errorf("unknown operation %q", f[1])
	}
	cmp := Comparison(f[5])
	switch cmp {
	case Eq, Ne, Lt, Le, Gt, Ge:
	default:
		return Instruction{}, fmt.Errorf("unknown comparison %q", f[5])
	}
	operand, err := strconv.Atoi(f[6])
	if err != nil {
		return Instruction{}, fmt.Errorf("operand in %q: %w", line, err)
	}
	return Instruction{Target: f[0], Delta: delta, Check: f[4], Compare: cmp, Operand: operand}, nil
}

// Parse reads one instruction per line.
func Parse(input string) ([]Instruction, error) {
	lines := puzzle.Lines(input)
	code := make([]Instruction, len(lines))
	for i, l := range lines {
		ins, err := ParseInstruction(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		code[i] = ins
	}
	return code, nil
}

// State is the register file after executing instructions. Registers
// start at zero.
type State struct {
	Registers map[string]int
	highest   int
	written   bool
}

// Run executes all instructions in order.
func Run(code []Instruction) *State {
	s := &State{Registers: make(map[string]int)}
	for _, ins := range code {
		s.Step(ins)
	}
	return s
}

// Step executes a single instruction.
func (s *State) Step(ins Instruction) {
	if !ins.Compare.Holds(s.Registers[ins.Check], ins.Operand) {
		return
	}
	v := s.Registers[ins.Target] + ins.Delta
	s.Registers[ins.Target] = v
	if !s.written || v > s.highest {
		s.highest = v
		s.written = true
	}
}

// Largest returns the largest value currently held in any register.
func (s *State) Largest() (int, bool) {
	first := true
	largest := 0
	for _, v := range s.Registers {
		if first || v > largest {
			largest = v
			first = false
		}
	}
	return largest, !first
}

// HighestEver returns the highest value written to any register.
func (s *State) HighestEver() (int, bool) {
	return s.highest, s.written
}

// Solve returns the largest final register value and the highest value ever held.
func Solve(_ context.Context, input string) (types.Answer, error) {
	code, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	s := Run(code)
	largest, ok := s.Largest()
	if !ok {
		return types.Answer{}, ErrNoWrites
	}
	highest, ok := s.HighestEver()
	if !ok {
		return types.Answer{}, ErrNoWrites
	}
	return types.NewAnswer(largest, highest), nil
}
