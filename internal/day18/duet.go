// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day18 interprets the duet assembly language, first as a sound
// card and then as two programs exchanging values.
package day18

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// ErrNoRecovery is returned when the sound program ends without a
// non-zero rcv.
var ErrNoRecovery = errors.New("program ended without recovering a frequency")

// Operand is either a register or an immediate value.
type Operand struct {
	Reg   byte
	Value int
}

// IsReg reports whether the operand names a register.
func (o Operand) IsReg() bool { return o.Reg != 0 }

func parseOperand(s string) (Operand, error) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return Operand{Reg: s[0]}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, fmt.Errorf("invalid operand %q", s)
	}
	return Operand{Value: n}, nil
}

// Instruction is one line of duet assembly.
type Instruction struct {
	Op   string
	X, Y Operand
}

var arity = map[string]int{
	"snd": 1, "rcv": 1,
	"set": 2, "add": 2, "mul": 2, "mod": 2, "jgz": 2,
}

// ParseInstruction reads a line such as "jgz a -1".
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return Instruction{}, fmt.Errorf("empty instruction")
	}
	n, ok := arity[f[0]]
	if !ok {
		return Instruction{}, fmt.Errorf("unknown instruction %q", f[0])
	}
	if len(f) != n+1 {
		return Instruction{}, fmt.Errorf("%s takes %d operands, got %d", f[0], n, len(f)-1)
	}
	ins := Instruction{Op: f[0]}
	var err error
	if ins.X, err = parseOperand(f[1]); err != nil {
		return Instruction{}, err
	}
	if f[0] != "snd" && f[0] != "jgz" && !ins.X.IsReg() {
		return Instruction{}, fmt.Errorf("%s needs a register, got %q", f[0], f[1])
	}
	if n == 2 {
		if ins.Y, err = parseOperand(f[2]); err != nil {
			return Instruction{}, err
		}
	}
	return ins, nil
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

// Registers holds the 26 single-letter registers, all starting at zero.
type Registers [26]int

func (r *Registers) get(o Operand) int {
	if o.IsReg() {
		return r[o.Reg-'a']
	}
	return o.Value
}

func (r *Registers) set(reg byte, v int) {
	r[reg-'a'] = v
}

// arith executes set/add/mul/mod and reports whether ins was one of them.
func (r *Registers) arith(ins Instruction) (bool, error) {
	x, y := r.get(ins.X), r.get(ins.Y)
	switch ins.Op {
	case "set":
		r.set(ins.X.Reg, y)
	case "add":
		r.set(ins.X.Reg, x+y)
	case "mul":
		r.set(ins.X.Reg, x*y)
	case "mod":
		if y == 0 {
			return true, errors.New("mod by zero")
		}
		r.set(ins.X.Reg, x%y)
	default:
		return false, nil
	}
	return true, nil
}

// Recover runs the program as a sound card: snd plays a frequency and the
// first rcv with a non-zero operand recovers the last frequency played.
func Recover(ctx context.Context, code []Instruction) (int, error) {
	var regs Registers
	last, played := 0, false
	for pc, steps := 0, 0; pc >= 0 && pc < len(code); steps++ {
		if err := puzzle.Check(ctx, steps); err != nil {
			return 0, err
		}
		ins := code[pc]
		if ok, err := regs.arith(ins); ok {
			if err != nil {
				return 0, fmt.Errorf("pc %d: %w", pc, err)
			}
			pc++
			continue
		}
		switch ins.Op {
		case "snd":
			last, played = regs.get(ins.X), true
		case "rcv":
			if regs.get(ins.X) != 0 && played {
				return last, nil
			}
		case "jgz":
			if regs.get(ins.X) > 0 {
				pc += regs.get(ins.Y)
				continue
			}
		}
		pc++
	}
	return 0, ErrNoRecovery
}

// Program is one half of a duet.
type Program struct {
	code  []Instruction
	regs  Registers
	pc    int
	queue []int
	Sent  int
}

// NewProgram returns a program with register p set to id.
func NewProgram(code []Instruction, id int) *Program {
	p := &Program{code: code}
	p.regs.set('p', id)
	return p
}

// Terminated reports whether the program counter left the code.
func (p *Program) Terminated() bool {
	return p.pc < 0 || p.pc >= len(p.code)
}

// Run executes until the program terminates or blocks on rcv with an
// empty queue. Sent values are appended to peer's queue. It returns the
// number of instructions executed.
func (p *Program) Run(ctx context.Context, peer *Program) (int, error) {
	steps := 0
	for !p.Terminated() {
		if err := puzzle.Check(ctx, steps+1); err != nil {
			return steps, err
		}
		ins := p.code[p.pc]
		if ok, err := p.regs.arith(ins); ok {
			if err != nil {
				return steps, fmt.Errorf("pc %d: %w", p.pc, err)
			}
			p.pc++
			steps++
			continue
		}
		switch ins.Op {
		case "snd":
			peer.queue = append(peer.queue, p.regs.get(ins.X))
			p.Sent++
		case "rcv":
			if len(p.queue) == 0 {
				return steps, nil
			}
			p.regs.set(ins.X.Reg, p.queue[0])
			p.queue = p.queue[1:]
		case "jgz":
			if p.regs.get(ins.X) > 0 {
				p.pc += p.regs.get(ins.Y)
				steps++
				continue
			}
		}
		p.pc++
		steps++
	}
	return steps, nil
}

// Duet runs programs 0 and 1 in turn until neither can make progress and
// returns the number of values program 1 sent.
func Duet(ctx context.Context, code []Instruction) (int, error) {
	p0, p1 := NewProgram(code, 0), NewProgram(code, 1)
	for {
		n0, err := p0.Run(ctx, p1)
		if err != nil {
			return 0, err
		}
		n1, err := p1.Run(ctx, p0)
		if err != nil {
			return 0, err
		}
		if n0 == 0 && n1 == 0 {
			return p1.Sent, nil
		}
	}
}

// Solve returns the recovered frequency and the number of values sent by
// program 1.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	code, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	freq, err := Recover(ctx, code)
	if err != nil {
		return types.Answer{}, err
	}
	sent, err := Duet(ctx, code)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(freq, sent), nil
}
