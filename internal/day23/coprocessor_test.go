package day23

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `set b 57
set c b
jnz a 2
jnz 1 5
mul b 100
sub b -100000
set c b
sub c -17000
set f 1
set d 2
set e 2
set g d
mul g e
sub g b
jnz g 2
set f 0
sub e -1
set g e
sub g b
jnz g -8
sub d -1
set g d
sub g b
jnz g -13
jnz f 2
sub h -1
set g b
sub g c
jnz g 2
jnz 1 3
sub b -17
jnz 1 -23
`

// small shrinks the debug-mode range so the program can be run directly.
func small(t *testing.T) []Instruction {
	t.Helper()
	src := strings.NewReplacer("mul b 100", "mul b 1", "sub b -100000", "sub b 0", "sub c -17000", "sub c -34").Replace(program)
	code, err := Parse(src)
	require.NoError(t, err)
	return code
}

func TestParse(t *testing.T) {
	code, err := Parse(program)
	require.NoError(t, err)
	require.Len(t, code, 32)
	assert.Equal(t, Instruction{Op: "jnz", X: Operand{Value: 1}, Y: Operand{Value: -23}}, code[31])

	_, err = Parse("add a 1")
	assert.Error(t, err)
	_, err = Parse("set 1 a")
	assert.Error(t, err)
	_, err = Parse("jnz a")
	assert.Error(t, err)
}

func TestRunCountsMuls(t *testing.T) {
	code, err := Parse(program)
	require.NoError(t, err)
	c := NewCore(code)
	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 55*55, c.Muls)
	assert.Equal(t, 1, c.Regs['h'-'a'], "57 is composite")
}

func TestFindLoop(t *testing.T) {
	code, err := Parse(program)
	require.NoError(t, err)
	loop, err := FindLoop(code)
	require.NoError(t, err)
	assert.Equal(t, Loop{B: 105700, C: 122700, Step: 17}, loop)

	_, err = FindLoop(code[:5])
	assert.ErrorIs(t, err, ErrNoLoop)
}

func TestCompositesMatchesDebugRun(t *testing.T) {
	code := small(t)
	loop, err := FindLoop(code)
	require.NoError(t, err)
	assert.Equal(t, Loop{B: 57, C: 91, Step: 17}, loop)

	c := NewCore(code)
	c.Regs[0] = 1
	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, c.Regs['h'-'a'], loop.Composites())
	assert.Equal(t, 3, loop.Composites())
}

func TestComposites(t *testing.T) {
	assert.Equal(t, 11, Loop{B: 2, C: 20, Step: 1}.Composites())
	assert.Equal(t, 0, Loop{B: 2, C: 3, Step: 1}.Composites())
}
