// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day20 simulates a swarm of particles in three dimensions.
package day20

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Ticks is the number of ticks simulated for both parts.
const Ticks = 1000

// Vec is a three dimensional integer vector.
type Vec struct{ X, Y, Z int }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Manhattan returns the Manhattan distance to the origin.
func (v Vec) Manhattan() int { return abs(v.X) + abs(v.Y) + abs(v.Z) }

// Particle has a position, velocity and constant acceleration.
type Particle struct {
	Pos, Vel, Acc Vec
}

// Tick advances the particle one step: velocity first, then position.
func (p *Particle) Tick() {
	p.Vel = p.Vel.Add(p.Acc)
	p.Pos = p.Pos.Add(p.Vel)
}

var particleRE = regexp.MustCompile(`^p=<\s*(-?\d+),\s*(-?\d+),\s*(-?\d+)>,\s*v=<\s*(-?\d+),\s*(-?\d+),\s*(-?\d+)>,\s*a=<\s*(-?\d+),\s*(-?\d+),\s*(-?\d+)>$`)

// ParseParticle reads a line such as "p=<3,0,0>, v=<2,0,0>, a=<-1,0,0>".
func ParseParticle(line string) (Particle, error) {
	m := particleRE.FindStringSubmatch(line)
	if m == nil {
		return Particle{}, fmt.Errorf("malformed particle %q", line)
	}
	var n [9]int
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Particle{}, fmt.Errorf("particle %q: %w", line, err)
		}
		n[i] = v
	}
	return Particle{
		Pos: Vec{n[0], n[1], n[2]},
		Vel: Vec{n[3], n[4], n[5]},
		Acc: Vec{n[6], n[7], n[8]},
	}, nil
}

// Cloud is the particle swarm. Destroyed particles are nil so indexes
// stay stable.
type Cloud []*Particle

// Parse reads one particle per line.
func Parse(input string) (Cloud, error) {
	var c Cloud
	for i, line := range puzzle.Lines(input) {
		p, err := ParseParticle(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		c = append(c, &p)
	}
	return c, nil
}

// Clone returns a deep copy of the cloud.
func (c Cloud) Clone() Cloud {
	out := make(Cloud, len(c))
	for i, p := range c {
		if p != nil {
			cp := *p
			out[i] = &cp
		}
	}
	return out
}

// Tick advances every live particle by one step.
func (c Cloud) Tick() {
	for _, p := range c {
		if p != nil {
			p.Tick()
		}
	}
}

// Collide destroys all particles that share a position with another one
// and returns how many were destroyed.
func (c Cloud) Collide() int {
	at := make(map[Vec][]int, len(c))
	for i, p := range c {
		if p != nil {
			at[p.Pos] = append(at[p.Pos], i)
		}
	}
	destroyed := 0
	for _, idx := range at {
		if len(idx) < 2 {
			continue
		}
		for _, i := range idx {
			c[i] = nil
			destroyed++
		}
	}
	return destroyed
}

// Count returns the number of live particles.
func (c Cloud) Count() int {
	n := 0
	for _, p := range c {
		if p != nil {
			n++
		}
	}
	return n
}

// Nearest returns the index of the live particle closest to the origin,
// preferring the lowest index on ties.
func (c Cloud) Nearest() (int, bool) {
	best, bestDist := -1, 0
	for i, p := range c {
		if p == nil {
			continue
		}
		if d := p.Pos.Manhattan(); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// Simulate advances a copy of the cloud for the given number of ticks,
// removing colliding particles after each tick when collide is set.
func (c Cloud) Simulate(ctx context.Context, ticks int, collide bool) (Cloud, error) {
	out := c.Clone()
	for t := 0; t < ticks; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out.Tick()
		if collide {
			out.Collide()
		}
	}
	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Solve returns the particle staying closest to the origin and the number
// of particles left after collisions.
func Solve(ctx context.Context, input string) (types.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	far, err := c.Simulate(ctx, Ticks, false)
	if err != nil {
		return types.Answer{}, err
	}
	nearest, ok := far.Nearest()
	if !ok {
		return types.Answer{}, fmt.Errorf("no particles")
	}
	left, err := c.Simulate(ctx, Ticks, true)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(nearest, left.Count()), nil
}
