// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package puzzle

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Normalize converts Windows line endings to newlines.
func Normalize(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}

// Lines splits input into lines, skipping blank lines. Leading and
// trailing whitespace of each line is removed.
func Lines(input string) []string {
	raw := strings.Split(Normalize(input), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Ints parses whitespace or comma separated integers.
func Ints(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = n
	}
	return out, nil
}

// checkEvery is how many loop iterations long-running solvers perform
// between context checks.
const checkEvery = 1 << 16

// Check returns ctx.Err() every checkEvery iterations and nil otherwise.
// Long loops call it with their iteration counter.
func Check(ctx context.Context, i int) error {
	if i%checkEvery != 0 {
		return nil
	}
	return ctx.Err()
}
