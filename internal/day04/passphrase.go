// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day04 validates passphrases against repeated words and anagrams.
package day04

import (
	"context"
	"slices"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Passphrase is a sequence of words.
type Passphrase []string

// Parse splits a line into words.
func Parse(line string) Passphrase {
	return strings.Fields(line)
}

// Valid reports whether no word appears twice.
func (p Passphrase) Valid() bool {
	return p.unique(func(w string) string { return w })
}

// ValidAnagrams reports whether no two words are anagrams of each other.
func (p Passphrase) ValidAnagrams() bool {
	return p.unique(func(w string) string {
		r := []rune(w)
		slices.Sort(r)
		return string(r)
	})
}

func (p Passphrase) unique(key func(string) string) bool {
	seen := make(map[string]struct{}, len(p))
	for _, w := range p {
		k := key(w)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

// Solve counts passphrases valid under each policy.
func Solve(_ context.Context, input string) (types.Answer, error) {
	var valid, validAnagrams int
	for _, line := range puzzle.Lines(input) {
		p := Parse(line)
		if p.Valid() {
			valid++
		}
		if p.ValidAnagrams() {
			validAnagrams++
		}
	}
	return types.NewAnswer(valid, validAnagrams), nil
}
