// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day21 grows a pixel grid by repeatedly applying enhancement rules.
package day21

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Iterations for each part.
const (
	ShortIterations = 5
	LongIterations  = 18
)

// ErrNoRule is returned when a square has no matching enhancement rule.
var ErrNoRule = errors.New("no enhancement rule matches")

// Start is the initial pattern.
const Start = ".#./..#/###"

// Grid is a square of pixels; '#' is on, '.' is off.
type Grid []string

// ParseGrid reads a pattern in rule notation, rows separated by '/'.
func ParseGrid(s string) (Grid, error) {
	g := Grid(strings.Split(strings.TrimSpace(s), "/"))
	for _, row := range g {
		if len(row) != len(g) {
			return nil, fmt.Errorf("pattern %q is not square", s)
		}
		if strings.Trim(row, ".#") != "" {
			return nil, fmt.Errorf("pattern %q has invalid pixels", s)
		}
	}
	return g, nil
}

// String returns the grid in rule notation.
func (g Grid) String() string {
	return strings.Join(g, "/")
}

// Size returns the edge length.
func (g Grid) Size() int { return len(g) }

// Lit counts the pixels that are on.
func (g Grid) Lit() int {
	n := 0
	for _, row := range g {
		n += strings.Count(row, "#")
	}
	return n
}

// Rotate returns the grid rotated a quarter turn counter-clockwise.
func (g Grid) Rotate() Grid {
	n := len(g)
	out := make(Grid, n)
	for r := range n {
		b := make([]byte, n)
		for c := range n {
			b[c] = g[c][n-r-1]
		}
		out[r] = string(b)
	}
	return out
}

// Mirror returns the grid flipped left to right.
func (g Grid) Mirror() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		b := []byte(row)
		for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
		out[i] = string(b)
	}
	return out
}

// Orientations returns the eight rotations and reflections of g.
func (g Grid) Orientations() []Grid {
	out := make([]Grid, 0, 8)
	cur := g
	for range 4 {
		out = append(out, cur, cur.Mirror())
		cur = cur.Rotate()
	}
	return out
}

// Sub returns the size×size square whose top-left corner is at row, col.
func (g Grid) Sub(row, col, size int) Grid {
	out := make(Grid, size)
	for i := range size {
		out[i] = g[row+i][col : col+size]
	}
	return out
}

// Split divides the grid into squares of edge 2 when the size is even,
// else 3, returned row by row.
func (g Grid) Split() ([]Grid, error) {
	var sub int
	switch {
	case g.Size()%2 == 0:
		sub = 2
	case g.Size()%3 == 0:
		sub = 3
	default:
		return nil, fmt.Errorf("cannot split grid of size %d", g.Size())
	}
	n := g.Size() / sub
	out := make([]Grid, 0, n*n)
	for r := range n {
		for c := range n {
			out = append(out, g.Sub(r*sub, c*sub, sub))
		}
	}
	return out, nil
}

// Join assembles n×n equally sized squares, given row by row.
func Join(parts []Grid) Grid {
	n := 0
	for n*n < len(parts) {
		n++
	}
	sub := parts[0].Size()
	out := make(Grid, 0, n*sub)
	for r := range n {
		for i := range sub {
			var b strings.Builder
			for c := range n {
				b.WriteString(parts[r*n+c][i])
			}
			out = append(out, b.String())
		}
	}
	return out
}

// Book maps every orientation of every input pattern to its output.
type Book map[string]Grid

// Parse reads rules of the form "../.# => ##./#../...".
func Parse(input string) (Book, error) {
	b := Book{}
	for i, line := range puzzle.Lines(input) {
		from, to, ok := strings.Cut(line, "=>")
		if !ok {
			return nil, fmt.Errorf("line %d: missing =>", i+1)
		}
		in, err := ParseGrid(from)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out, err := ParseGrid(to)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if out.Size() != in.Size()+1 {
			return nil, fmt.Errorf("line %d: output must be one larger than input", i+1)
		}
		for _, o := range in.Orientations() {
			if _, exists := b[o.String()]; !exists {
				b[o.String()] = out
			}
		}
	}
	return b, nil
}

// Enhance applies the book once to every square of g.
func (b Book) Enhance(g Grid) (Grid, error) {
	parts, err := g.Split()
	if err != nil {
		return nil, err
	}
	for i, p := range parts {
		out, ok := b[p.String()]
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrNoRule, p)
		}
		parts[i] = out
	}
	return Join(parts), nil
}

// Iterate enhances g n times.
func (b Book) Iterate(ctx context.Context, g Grid, n int) (Grid, error) {
	for range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		if g, err = b.Enhance(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Solve returns the lit pixels after 5 and after 18 iterations.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	b, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	start, _ := ParseGrid(Start)
	short, err := b.Iterate(ctx, start, ShortIterations)
	if err != nil {
		return types.Answer{}, err
	}
	long, err := b.Iterate(ctx, short, LongIterations-ShortIterations)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(short.Lit(), long.Lit()), nil
}
