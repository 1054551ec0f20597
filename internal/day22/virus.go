// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day22 simulates a virus carrier wandering an infinite grid of
// computing nodes.
package day22

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Bursts for each part.
const (
	BasicBursts   = 10_000
	EvolvedBursts = 10_000_000
)

// State is the condition of a node.
type State uint8

const (
	Clean State = iota
	Weakened
	Infected
	Flagged
)

// Point is a node position; y grows downwards.
type Point struct{ X, Y int }

type heading struct{ dx, dy int }

var up = heading{0, -1}

func (h heading) left() heading    { return heading{h.dy, -h.dx} }
func (h heading) right() heading   { return heading{-h.dy, h.dx} }
func (h heading) reverse() heading { return heading{-h.dx, -h.dy} }

// Cluster is the grid of nodes. Nodes absent from the map are clean.
type Cluster struct {
	nodes map[Point]State
	pos   Point
	dir   heading

	// Infections counts bursts that left a node infected.
	Infections int
}

// Parse reads the initial infected map. The carrier starts at the centre
// square facing up; the centre is the origin.
func Parse(input string) (*Cluster, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	c := &Cluster{nodes: map[Point]State{}, dir: up}
	h, w := len(lines), len(lines[0])
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("line %d: width %d, want %d", y+1, len(line), w)
		}
		for x, ch := range line {
			switch ch {
			case '#':
				c.nodes[Point{x - w/2, y - h/2}] = Infected
			case '.':
			default:
				return nil, fmt.Errorf("line %d: unexpected %q", y+1, ch)
			}
		}
	}
	return c, nil
}

// Clone returns an independent copy of the cluster.
func (c *Cluster) Clone() *Cluster {
	out := &Cluster{nodes: make(map[Point]State, len(c.nodes)), pos: c.pos, dir: c.dir, Infections: c.Infections}
	for p, s := range c.nodes {
		out.nodes[p] = s
	}
	return out
}

// At returns the state of the node at p.
func (c *Cluster) At(p Point) State { return c.nodes[p] }

// Position returns the carrier's current node.
func (c *Cluster) Position() Point { return c.pos }

func (c *Cluster) set(s State) {
	if s == Clean {
		delete(c.nodes, c.pos)
		return
	}
	c.nodes[c.pos] = s
	if s == Infected {
		c.Infections++
	}
}

func (c *Cluster) move() {
	c.pos = Point{c.pos.X + c.dir.dx, c.pos.Y + c.dir.dy}
}

// Burst performs one step of the basic virus: turn right on infected
// nodes and left on clean ones, toggle the node, then move forward.
func (c *Cluster) Burst() {
	if c.At(c.pos) == Infected {
		c.dir = c.dir.right()
		c.set(Clean)
	} else {
		c.dir = c.dir.left()
		c.set(Infected)
	}
	c.move()
}

// EvolvedBurst performs one step of the evolved virus, which cycles nodes
// through clean, weakened, infected and flagged.
func (c *Cluster) EvolvedBurst() {
	switch c.At(c.pos) {
	case Clean:
		c.dir = c.dir.left()
		c.set(Weakened)
	case Weakened:
		c.set(Infected)
	case Infected:
		c.dir = c.dir.right()
		c.set(Flagged)
	case Flagged:
		c.dir = c.dir.reverse()
		c.set(Clean)
	}
	c.move()
}

// Run performs n bursts and returns the number of infections they caused.
func (c *Cluster) Run(ctx context.Context, n int, evolved bool) (int, error) {
	before := c.Infections
	for i := range n {
		if err := puzzle.Check(ctx, i); err != nil {
			return 0, err
		}
		if evolved {
			c.EvolvedBurst()
		} else {
			c.Burst()
		}
	}
	return c.Infections - before, nil
}

// String renders the nodes within radius r of the origin.
func (c *Cluster) String() string {
	const r = 4
	var b strings.Builder
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			b.WriteByte(".W#F"[c.At(Point{x, y})])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Solve returns the infections caused by the basic and evolved viruses.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	basic, err := c.Clone().Run(ctx, BasicBursts, false)
	if err != nil {
		return types.Answer{}, err
	}
	evolved, err := c.Run(ctx, EvolvedBursts, true)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(basic, evolved), nil
}
