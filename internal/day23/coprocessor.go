// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day23 runs the experimental coprocessor program and then works
// out what its debug-mode loop computes.
package day23

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// DefaultStep is the stride of the outer loop when the program does not
// reveal one.
const DefaultStep = 17

// ErrNoLoop is returned when the program has no recognisable prime test.
var ErrNoLoop = errors.New("program has no composite counting loop")

// Operand is either a register or an immediate value.
type Operand struct {
	Reg   byte
	Value int
}

// IsReg reports whether the operand names a register.
func (o Operand) IsReg() bool { return o.Reg != 0 }

func parseOperand(s string) (Operand, error) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'h' {
		return Operand{Reg: s[0]}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, fmt.Errorf("invalid operand %q", s)
	}
	return Operand{Value: n}, nil
}

// Instruction is one line of coprocessor assembly.
type Instruction struct {
	Op   string
	X, Y Operand
}

// Parse reads one instruction per line. Only set, sub, mul and jnz exist.
func Parse(input string) ([]Instruction, error) {
	lines := puzzle.Lines(input)
	code := make([]Instruction, len(lines))
	for i, line := range lines {
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("line %d: want 3 fields, got %d", i+1, len(f))
		}
		switch f[0] {
		case "set", "sub", "mul", "jnz":
		default:
			return nil, fmt.Errorf("line %d: unknown instruction %q", i+1, f[0])
		}
		x, err := parseOperand(f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if f[0] != "jnz" && !x.IsReg() {
			return nil, fmt.Errorf("line %d: %s needs a register, got %q", i+1, f[0], f[1])
		}
		y, err := parseOperand(f[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		code[i] = Instruction{Op: f[0], X: x, Y: y}
	}
	return code, nil
}

// Core is the coprocessor with registers a through h.
type Core struct {
	code []Instruction
	Regs [8]int
	PC   int

	// Muls counts executed mul instructions.
	Muls int
}

// NewCore returns a core with all registers zero.
func NewCore(code []Instruction) *Core {
	return &Core{code: code}
}

func (c *Core) get(o Operand) int {
	if o.IsReg() {
		return c.Regs[o.Reg-'a']
	}
	return o.Value
}

// Halted reports whether the program counter is outside the code.
func (c *Core) Halted() bool {
	return c.PC < 0 || c.PC >= len(c.code)
}

// Step executes one instruction. It returns false once the core halted.
func (c *Core) Step() bool {
	if c.Halted() {
		return false
	}
	ins := c.code[c.PC]
	switch ins.Op {
	case "set":
		c.Regs[ins.X.Reg-'a'] = c.get(ins.Y)
	case "sub":
		c.Regs[ins.X.Reg-'a'] -= c.get(ins.Y)
	case "mul":
		c.Regs[ins.X.Reg-'a'] *= c.get(ins.Y)
		c.Muls++
	case "jnz":
		if c.get(ins.X) != 0 {
			c.PC += c.get(ins.Y)
			return true
		}
	}
	c.PC++
	return true
}

// Run executes until the core halts.
func (c *Core) Run(ctx context.Context) error {
	for i := 0; c.Step(); i++ {
		if err := puzzle.Check(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// Loop describes the outer loop of the debug-mode program: every step-th
// number from B through C inclusive is tested for primality.
type Loop struct {
	B, C, Step int
}

// FindLoop runs the setup preamble with a=1 to read b and c, and takes
// the stride from the last "sub b" instruction. The preamble ends at the
// first "set f" instruction.
func FindLoop(code []Instruction) (Loop, error) {
	body := -1
	for i, ins := range code {
		if ins.Op == "set" && ins.X.Reg == 'f' {
			body = i
			break
		}
	}
	if body < 0 {
		return Loop{}, ErrNoLoop
	}
	c := NewCore(code[:body])
	c.Regs[0] = 1
	for i := 0; c.Step(); i++ {
		if i > 1000 {
			return Loop{}, fmt.Errorf("%w: preamble does not terminate", ErrNoLoop)
		}
	}
	loop := Loop{B: c.Regs['b'-'a'], C: c.Regs['c'-'a'], Step: DefaultStep}
	for i := len(code) - 1; i > body; i-- {
		if ins := code[i]; ins.Op == "sub" && ins.X.Reg == 'b' && !ins.Y.IsReg() {
			loop.Step = -ins.Y.Value
			break
		}
	}
	if loop.Step <= 0 || loop.C < loop.B {
		return Loop{}, fmt.Errorf("%w: b=%d c=%d step=%d", ErrNoLoop, loop.B, loop.C, loop.Step)
	}
	return loop, nil
}

// Composites counts the non-prime numbers visited by the loop.
func (l Loop) Composites() int {
	n := 0
	for x := l.B; x <= l.C; x += l.Step {
		if !prime(x) {
			n++
		}
	}
	return n
}

func prime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Solve returns the number of mul instructions executed in normal mode
// and the final value of h in debug mode.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	code, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	core := NewCore(code)
	if err := core.Run(ctx); err != nil {
		return types.Answer{}, err
	}
	loop, err := FindLoop(code)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(core.Muls, loop.Composites()), nil
}
