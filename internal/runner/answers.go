// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Answers maps days to their known correct answers. An empty part means
// that part is not known.
type Answers map[int]types.Answer

// LoadAnswers reads a YAML answers file of the form
//
//	7:
//	  part1: tknk
//	  part2: "60"
//
// An empty path or a missing file yields no answers.
func LoadAnswers(path string) (Answers, error) {
	if path == "" {
		return Answers{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Answers{}, nil
		}
		return nil, fmt.Errorf("reading answers %s: %w", path, err)
	}
	answers := Answers{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parsing answers %s: %w", path, err)
	}
	return answers, nil
}

// Verify compares got with the known answer for day. A result is ok when
// every known part matches, wrong when any known part differs, and
// unverified when nothing is known.
func (a Answers) Verify(day int, got types.Answer) types.Status {
	want, ok := a[day]
	if !ok || (want.Part1 == "" && want.Part2 == "") {
		return types.StatusUnverified
	}
	if want.Part1 != "" && want.Part1 != got.Part1 {
		return types.StatusWrong
	}
	if want.Part2 != "" && want.Part2 != got.Part2 {
		return types.StatusWrong
	}
	return types.StatusOK
}
