// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calendar registers the solver for every day of the puzzle
// calendar.
package calendar

import (
	"github.com/pdiddy/aoc2017/internal/day01"
	"github.com/pdiddy/aoc2017/internal/day02"
	"github.com/pdiddy/aoc2017/internal/day03"
	"github.com/pdiddy/aoc2017/internal/day04"
	"github.com/pdiddy/aoc2017/internal/day05"
	"github.com/pdiddy/aoc2017/internal/day06"
	"github.com/pdiddy/aoc2017/internal/day07"
	"github.com/pdiddy/aoc2017/internal/day08"
	"github.com/pdiddy/aoc2017/internal/day09"
	"github.com/pdiddy/aoc2017/internal/day10"
	"github.com/pdiddy/aoc2017/internal/day11"
	"github.com/pdiddy/aoc2017/internal/day12"
	"github.com/pdiddy/aoc2017/internal/day13"
	"github.com/pdiddy/aoc2017/internal/day14"
	"github.com/pdiddy/aoc2017/internal/day15"
	"github.com/pdiddy/aoc2017/internal/day16"
	"github.com/pdiddy/aoc2017/internal/day17"
	"github.com/pdiddy/aoc2017/internal/day18"
	"github.com/pdiddy/aoc2017/internal/day19"
	"github.com/pdiddy/aoc2017/internal/day20"
	"github.com/pdiddy/aoc2017/internal/day21"
	"github.com/pdiddy/aoc2017/internal/day22"
	"github.com/pdiddy/aoc2017/internal/day23"
	"github.com/pdiddy/aoc2017/internal/day24"
	"github.com/pdiddy/aoc2017/internal/day25"
	"github.com/pdiddy/aoc2017/internal/puzzle"
)

var days = []puzzle.Puzzle{
	{Day: 1, Title: "Inverse Captcha", Solve: day01.Solve},
	{Day: 2, Title: "Corruption Checksum", Solve: day02.Solve},
	{Day: 3, Title: "Spiral Memory", Solve: day03.Solve},
	{Day: 4, Title: "High-Entropy Passphrases", Solve: day04.Solve},
	{Day: 5, Title: "A Maze of Twisty Trampolines, All Alike", Solve: day05.Solve},
	{Day: 6, Title: "Memory Reallocation", Solve: day06.Solve},
	{Day: 7, Title: "Recursive Circus", Solve: day07.Solve},
	{Day: 8, Title: "I Heard You Like Registers", Solve: day08.Solve},
	{Day: 9, Title: "Stream Processing", Solve: day09.Solve},
	{Day: 10, Title: "Knot Hash", Solve: day10.Solve, DefaultInput: day10.DefaultInput},
	{Day: 11, Title: "Hex Ed", Solve: day11.Solve},
	{Day: 12, Title: "Digital Plumber", Solve: day12.Solve},
	{Day: 13, Title: "Packet Scanners", Solve: day13.Solve},
	{Day: 14, Title: "Disk Defragmentation", Solve: day14.Solve, DefaultInput: day14.DefaultInput},
	{Day: 15, Title: "Dueling Generators", Solve: day15.Solve, DefaultInput: day15.DefaultInput},
	{Day: 16, Title: "Permutation Promenade", Solve: day16.Solve},
	{Day: 17, Title: "Spinlock", Solve: day17.Solve, DefaultInput: day17.DefaultInput},
	{Day: 18, Title: "Duet", Solve: day18.Solve},
	{Day: 19, Title: "A Series of Tubes", Solve: day19.Solve},
	{Day: 20, Title: "Particle Swarm", Solve: day20.Solve},
	{Day: 21, Title: "Fractal Art", Solve: day21.Solve},
	{Day: 22, Title: "Sporifica Virus", Solve: day22.Solve},
	{Day: 23, Title: "Coprocessor Conflagration", Solve: day23.Solve},
	{Day: 24, Title: "Electromagnetic Moat", Solve: day24.Solve},
	{Day: 25, Title: "The Halting Problem", Solve: day25.Solve, DefaultInput: day25.DefaultInput},
}

// Registry returns a registry holding every day of the calendar.
func Registry() *puzzle.Registry {
	r := puzzle.NewRegistry()
	for _, p := range days {
		r.MustRegister(p)
	}
	return r
}
