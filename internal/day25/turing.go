// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day25 reads a Turing machine blueprint and runs it to compute
// the diagnostic checksum.
package day25

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Part2 is reported for the second part, which has no puzzle of its own.
const Part2 = "Merry Christmas"

// DefaultInput is the puzzle blueprint.
const DefaultInput = `Begin in state A.
Perform a diagnostic checksum after 12861455 steps.

In state A:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the right.
    - Continue with state B.
  If the current value is 1:
    - Write the value 0.
    - Move one slot to the left.
    - Continue with state B.

In state B:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the left.
    - Continue with state C.
  If the current value is 1:
    - Write the value 0.
    - Move one slot to the right.
    - Continue with state E.

In state C:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the right.
    - Continue with state E.
  If the current value is 1:
    - Write the value 0.
    - Move one slot to the left.
    - Continue with state D.

In state D:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the left.
    - Continue with state A.
  If the current value is 1:
    - Write the value 1.
    - Move one slot to the left.
    - Continue with state A.

In state E:
  If the current value is 0:
    - Write the value 0.
    - Move one slot to the right.
    - Continue with state A.
  If the current value is 1:
    - Write the value 0.
    - Move one slot to the right.
    - Continue with state F.

In state F:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the right.
    - Continue with state E.
  If the current value is 1:
    - Write the value 1.
    - Move one slot to the right.
    - Continue with state A.
`

// Transition is what the machine does for one state and current value.
type Transition struct {
	Write byte
	Move  int
	Next  byte
}

// Blueprint is a parsed machine description.
type Blueprint struct {
	Start byte
	Steps int
	Rules map[byte][2]Transition
}

var (
	beginRE    = regexp.MustCompile(`^Begin in state ([A-Z])\.$`)
	stepsRE    = regexp.MustCompile(`^Perform a diagnostic checksum after (\d+) steps?\.$`)
	stateRE    = regexp.MustCompile(`^In state ([A-Z]):$`)
	valueRE    = regexp.MustCompile(`^If the current value is ([01]):$`)
	writeRE    = regexp.MustCompile(`^- Write the value ([01])\.$`)
	moveRE     = regexp.MustCompile(`^- Move one slot to the (left|right)\.$`)
	continueRE = regexp.MustCompile(`^- Continue with state ([A-Z])\.$`)
)

// Parse reads a blueprint. Every state named in a transition must be
// defined and every state must handle both values.
func Parse(input string) (*Blueprint, error) {
	bp := &Blueprint{Rules: map[byte][2]Transition{}}
	var (
		state      byte
		value      = -1
		seen       = map[byte]*[2]bool{}
		have       [3]bool
		t          Transition
		hasStart   bool
		hasSteps   bool
		lineNumber int
	)
	flush := func() error {
		if value < 0 {
			return nil
		}
		if have != [3]bool{true, true, true} {
			return fmt.Errorf("state %c value %d: incomplete transition", state, value)
		}
		rules := bp.Rules[state]
		rules[value] = t
		bp.Rules[state] = rules
		seen[state][value] = true
		value, have, t = -1, [3]bool{}, Transition{}
		return nil
	}

	for _, line := range puzzle.Lines(input) {
		lineNumber++
		fail := func(err error) (*Blueprint, error) {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if m := beginRE.FindStringSubmatch(line); m != nil {
			bp.Start, hasStart = m[1][0], true
			continue
		}
		if m := stepsRE.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return fail(err)
			}
			bp.Steps, hasSteps = n, true
			continue
		}
		if m := stateRE.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return fail(err)
			}
			state = m[1][0]
			if _, dup := seen[state]; dup {
				return fail(fmt.Errorf("state %c defined twice", state))
			}
			seen[state] = &[2]bool{}
			continue
		}
		if m := valueRE.FindStringSubmatch(line); m != nil {
			if state == 0 {
				return fail(fmt.Errorf("value outside of a state"))
			}
			if err := flush(); err != nil {
				return fail(err)
			}
			value = int(m[1][0] - '0')
			if seen[state][value] {
				return fail(fmt.Errorf("state %c value %d defined twice", state, value))
			}
			continue
		}
		if value < 0 {
			return fail(fmt.Errorf("unexpected %q", line))
		}
		switch {
		case writeRE.MatchString(line):
			t.Write = writeRE.FindStringSubmatch(line)[1][0] - '0'
			have[0] = true
		case moveRE.MatchString(line):
			t.Move = 1
			if moveRE.FindStringSubmatch(line)[1] == "left" {
				t.Move = -1
			}
			have[1] = true
		case continueRE.MatchString(line):
			t.Next = continueRE.FindStringSubmatch(line)[1][0]
			have[2] = true
		default:
			return fail(fmt.Errorf("unexpected %q", line))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if !hasStart {
		return nil, fmt.Errorf("missing start state")
	}
	if !hasSteps {
		return nil, fmt.Errorf("missing diagnostic step count")
	}
	if _, ok := bp.Rules[bp.Start]; !ok {
		return nil, fmt.Errorf("start state %c is not defined", bp.Start)
	}
	for s, got := range seen {
		if *got != [2]bool{true, true} {
			return nil, fmt.Errorf("state %c does not handle both values", s)
		}
	}
	for s, rules := range bp.Rules {
		for _, r := range rules {
			if _, ok := bp.Rules[r.Next]; !ok {
				return nil, fmt.Errorf("state %c continues with undefined state %c", s, r.Next)
			}
		}
	}
	return bp, nil
}

// Tape is an unbounded tape of zeros and ones.
type Tape struct {
	cells  []byte
	origin int
	cursor int
}

func (t *Tape) index() int {
	i := t.cursor + t.origin
	switch {
	case i < 0:
		grow := max(len(t.cells), -i)
		t.cells = append(make([]byte, grow), t.cells...)
		t.origin += grow
		i += grow
	case i >= len(t.cells):
		grow := max(len(t.cells), i-len(t.cells)+1)
		t.cells = append(t.cells, make([]byte, grow)...)
	}
	return i
}

// Read returns the value under the cursor.
func (t *Tape) Read() byte { return t.cells[t.index()] }

// Write sets the value under the cursor.
func (t *Tape) Write(v byte) { t.cells[t.index()] = v }

// Move shifts the cursor by n slots.
func (t *Tape) Move(n int) { t.cursor += n }

// Checksum counts the ones on the tape.
func (t *Tape) Checksum() int {
	n := 0
	for _, c := range t.cells {
		n += int(c)
	}
	return n
}

// Run executes the blueprint for its diagnostic step count and returns
// the checksum.
func (bp *Blueprint) Run(ctx context.Context) (int, error) {
	var tape Tape
	state := bp.Start
	for i := range bp.Steps {
		if err := puzzle.Check(ctx, i); err != nil {
			return 0, err
		}
		t := bp.Rules[state][tape.Read()]
		tape.Write(t.Write)
		tape.Move(t.Move)
		state = t.Next
	}
	return tape.Checksum(), nil
}

// String renders the blueprint in a compact form, one state per line.
func (bp *Blueprint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "start %c, %d steps\n", bp.Start, bp.Steps)
	for s := byte('A'); s <= 'Z'; s++ {
		rules, ok := bp.Rules[s]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%c:", s)
		for v, r := range rules {
			fmt.Fprintf(&b, " %d->(%d,%+d,%c)", v, r.Write, r.Move, r.Next)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Solve returns the diagnostic checksum. The second part is a greeting.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	bp, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	sum, err := bp.Run(ctx)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(sum, Part2), nil
}
