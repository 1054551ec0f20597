// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Year is the edition of the puzzle calendar this tool solves.
const Year = 2017

// Answer holds the answers to both parts of a puzzle.
type Answer struct {
	Part1 string `json:"part1" yaml:"part1"`
	Part2 string `json:"part2" yaml:"part2"`
}

// NewAnswer formats two values into an Answer using their default format.
func NewAnswer(part1, part2 any) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// Status describes the outcome of solving a single day.
type Status string

const (
	StatusOK         Status = "ok"
	StatusWrong      Status = "wrong"
	StatusUnverified Status = "unverified"
	StatusFailed     Status = "failed"
	StatusTimeout    Status = "timeout"
)

// Solved reports whether the status carries a usable answer.
func (s Status) Solved() bool {
	return s == StatusOK || s == StatusWrong || s == StatusUnverified
}

// Result records the outcome of solving one day.
type Result struct {
	Day      int           `json:"day" yaml:"day"`
	Title    string        `json:"title" yaml:"title"`
	Answer   Answer        `json:"answer" yaml:"answer"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Status   Status        `json:"status" yaml:"status"`
	Err      string        `json:"error,omitempty" yaml:"error,omitempty"`
}
