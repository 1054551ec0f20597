// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input locates puzzle inputs on disk and downloads missing ones
// from the puzzle website.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// DefaultDir is used when no inputs directory is configured.
const DefaultDir = "inputs"

// ErrNoInput is returned when a day has neither an input file nor a
// built-in default.
var ErrNoInput = errors.New("no input")

// Path returns the input file path for day under cfg.InputsDir.
func Path(cfg types.InputConfig, day int) string {
	dir := cfg.InputsDir
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, puzzle.Name(day)+".txt")
}

// Load returns the input text for p. Only trailing newlines are removed so
// leading whitespace survives. A missing file falls back to the puzzle's
// DefaultInput.
func Load(cfg types.InputConfig, p puzzle.Puzzle) (string, error) {
	path := Path(cfg, p.Day)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return strings.TrimRight(puzzle.Normalize(string(data)), "\n"), nil
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("reading %s: %w", path, err)
	case p.DefaultInput != "":
		return p.DefaultInput, nil
	default:
		return "", fmt.Errorf("%w for %s (expected %s)", ErrNoInput, p.Name(), path)
	}
}

// Exists reports whether the input file for day is present.
func Exists(cfg types.InputConfig, day int) bool {
	_, err := os.Stat(Path(cfg, day))
	return err == nil
}

// Missing returns the days in days whose input file is absent.
func Missing(cfg types.InputConfig, days []int) []int {
	var out []int
	for _, d := range days {
		if !Exists(cfg, d) {
			out = append(out, d)
		}
	}
	return out
}
