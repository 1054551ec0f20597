// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// Summary counts results by status.
type Summary struct {
	Total    int
	ByStatus map[types.Status]int
	Elapsed  time.Duration
}

// Summarize tallies results. Elapsed is the sum of the per-day durations.
func Summarize(results []types.Result) Summary {
	s := Summary{Total: len(results), ByStatus: map[types.Status]int{}}
	for _, r := range results {
		s.ByStatus[r.Status]++
		s.Elapsed += r.Duration
	}
	return s
}

// Solved returns the number of days with an answer.
func (s Summary) Solved() int {
	return s.ByStatus[types.StatusOK] + s.ByStatus[types.StatusWrong] + s.ByStatus[types.StatusUnverified]
}

// HasFailures reports whether any day failed, timed out or was wrong.
func (s Summary) HasFailures() bool {
	return s.ByStatus[types.StatusFailed]+s.ByStatus[types.StatusTimeout]+s.ByStatus[types.StatusWrong] > 0
}

// Print renders results as a table followed by a summary line.
func Print(w io.Writer, results []types.Result) Summary {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTITLE\tPART 1\tPART 2\tTIME\tSTATUS")
	for _, r := range results {
		status := string(r.Status)
		if r.Err != "" {
			status += " (" + r.Err + ")"
		}
		fmt.Fprintf(tw, "%02d\t%s\t%s\t%s\t%s\t%s\n",
			r.Day, r.Title, r.Answer.Part1, r.Answer.Part2, r.Duration.Round(time.Microsecond), status)
	}
	tw.Flush()

	s := Summarize(results)
	fmt.Fprintf(w, "\nSummary: %d/%d solved (%d ok, %d wrong, %d unverified, %d failed, %d timeout) in %v\n",
		s.Solved(), s.Total,
		s.ByStatus[types.StatusOK], s.ByStatus[types.StatusWrong], s.ByStatus[types.StatusUnverified],
		s.ByStatus[types.StatusFailed], s.ByStatus[types.StatusTimeout],
		s.Elapsed.Round(time.Millisecond))
	return s
}
