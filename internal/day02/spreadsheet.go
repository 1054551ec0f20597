// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day02 computes corruption checksums over a spreadsheet of numbers.
package day02

import (
	"context"
	"fmt"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Spreadsheet holds rows of numbers.
type Spreadsheet struct {
	Rows [][]int
}

// Parse reads whitespace separated numbers, one row per line.
func Parse(input string) (Spreadsheet, error) {
	var s Spreadsheet
	for i, line := range puzzle.Lines(input) {
		row, err := puzzle.Ints(line)
		if err != nil {
			return Spreadsheet{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(row) == 0 {
			continue
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// Checksum sums the difference between the largest and smallest value of each row.
func (s Spreadsheet) Checksum() int {
	sum := 0
	for _, row := range s.Rows {
		lo, hi := row[0], row[0]
		for _, v := range row[1:] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		sum += hi - lo
	}
	return sum
}

// DivSum sums, for each row, the quotient of the only two values where one
// evenly divides the other.
func (s Spreadsheet) DivSum() (int, error) {
	sum := 0
	for i, row := range s.Rows {
		q, ok := evenQuotient(row)
		if !ok {
			return 0, fmt.Errorf("row %d has no evenly divisible pair", i+1)
		}
		sum += q
	}
	return sum, nil
}

func evenQuotient(row []int) (int, bool) {
	for i, a := range row {
		for j, b := range row {
			if i != j && b != 0 && a%b == 0 {
				return a / b, true
			}
		}
	}
	return 0, false
}

// Solve returns the checksum and the division sum.
func Solve(_ context.Context, input string) (types.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	div, err := s.DivSum()
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(s.Checksum(), div), nil
}
