// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day19 follows a routing diagram of tubes from the top edge to
// its end, collecting the letters it passes.
package day19

import (
	"context"
	"errors"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// ErrNoStart is returned when the first row has no tube.
var ErrNoStart = errors.New("no path start in first row")

// ErrLoop is returned when the path runs around a closed loop and never ends.
var ErrLoop = errors.New("path never ends")

// Direction is a cardinal direction as a row/column delta.
type Direction struct{ DR, DC int }

var (
	North = Direction{-1, 0}
	East  = Direction{0, 1}
	South = Direction{1, 0}
	West  = Direction{0, -1}
)

// Left returns the direction after a quarter turn counter-clockwise.
func (d Direction) Left() Direction { return Direction{-d.DC, d.DR} }

// Right returns the direction after a quarter turn clockwise.
func (d Direction) Right() Direction { return Direction{d.DC, -d.DR} }

// Diagram is the routing diagram; spaces are empty.
type Diagram struct {
	rows  []string
	width int
}

// Parse keeps every line as-is, including leading spaces.
func Parse(input string) *Diagram {
	rows := strings.Split(puzzle.Normalize(input), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	d := &Diagram{rows: rows}
	for _, r := range rows {
		d.width = max(d.width, len(r))
	}
	return d
}

// at returns the character at row, col, or ' ' outside the diagram.
func (d *Diagram) at(row, col int) byte {
	if row < 0 || row >= len(d.rows) || col < 0 || col >= len(d.rows[row]) {
		return ' '
	}
	return d.rows[row][col]
}

// Route is the outcome of walking the diagram.
type Route struct {
	Letters string
	Steps   int
}

// Walk starts at the tube in the first row heading south. At each square
// it keeps going straight if possible, else turns left or right, and
// stops when no neighbouring square continues the path. Steps counts
// every square visited including the first.
//
// A walk has at most four states per square, one per heading, so a route
// longer than that has repeated a state and loops forever.
func (d *Diagram) Walk(ctx context.Context) (Route, error) {
	if len(d.rows) == 0 {
		return Route{}, ErrNoStart
	}
	col := strings.IndexFunc(d.rows[0], func(r rune) bool { return r != ' ' })
	if col < 0 {
		return Route{}, ErrNoStart
	}
	row, dir := 0, South
	var letters strings.Builder
	route := Route{Steps: 1}
	limit := 4 * len(d.rows) * d.width
	for i := 0; ; i++ {
		if err := puzzle.Check(ctx, i); err != nil {
			return Route{}, err
		}
		if route.Steps > limit {
			return Route{}, ErrLoop
		}
		if ch := d.at(row, col); ch >= 'A' && ch <= 'Z' {
			letters.WriteByte(ch)
		}
		moved := false
		for _, next := range []Direction{dir, dir.Left(), dir.Right()} {
			r, c := row+next.DR, col+next.DC
			if d.at(r, c) != ' ' {
				row, col, dir = r, c, next
				moved = true
				break
			}
		}
		if !moved {
			route.Letters = letters.String()
			return route, nil
		}
		route.Steps++
	}
}

// Solve returns the letters seen along the path and the number of steps.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	route, err := Parse(input).Walk(ctx)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(route.Letters, route.Steps), nil
}
