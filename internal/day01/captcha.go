// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day01 solves the inverse captcha: summing digits that match a
// digit further along a circular sequence.
package day01

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Captcha is a circular sequence of decimal digits.
type Captcha struct {
	Digits []int
}

// Parse reads a captcha from a string of digits.
func Parse(s string) (Captcha, error) {
	s = strings.TrimSpace(s)
	digits := make([]int, 0, len(s))
	for i, ch := range s {
		if ch < '0' || ch > '9' {
			return Captcha{}, fmt.Errorf("invalid digit %q at position %d", ch, i)
		}
		digits = append(digits, int(ch-'0'))
	}
	return Captcha{Digits: digits}, nil
}

// SumMatching returns the sum of all digits that equal the digit n
// positions ahead, wrapping around the end of the sequence.
func (c Captcha) SumMatching(n int) int {
	l := len(c.Digits)
	sum := 0
	for i, d := range c.Digits {
		if d == c.Digits[(i+n)%l] {
			sum += d
		}
	}
	return sum
}

// Next sums digits that match their immediate successor.
func (c Captcha) Next() int {
	return c.SumMatching(1)
}

// Halfway sums digits that match the digit halfway around the sequence.
func (c Captcha) Halfway() int {
	return c.SumMatching(len(c.Digits) / 2)
}

// Solve returns the next-digit and halfway sums.
func Solve(_ context.Context, input string) (types.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(c.Next(), c.Halfway()), nil
}
