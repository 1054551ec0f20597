// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aoc2017/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded solve runs",
	Long: `History lists results from the history database, newest run first.
Use --best to show the fastest accepted result for each day instead, and
--prune to keep only the newest runs.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("day", 0, "only show this day")
	historyCmd.Flags().Int("limit", 0, "maximum rows to show (default 50)")
	historyCmd.Flags().Bool("best", false, "show the fastest accepted result per day")
	historyCmd.Flags().Int("prune", 0, "delete all but the newest N runs")
	historyCmd.Flags().Bool("json", false, "print entries as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(loadConfig().Store)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx := context.Background()

	if keep, _ := cmd.Flags().GetInt("prune"); keep > 0 {
		n, err := db.Prune(ctx, keep)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d run(s)\n", n)
		return nil
	}

	var entries []store.Entry
	if best, _ := cmd.Flags().GetBool("best"); best {
		entries, err = db.Best(ctx)
	} else {
		day, _ := cmd.Flags().GetInt("day")
		limit, _ := cmd.Flags().GetInt("limit")
		entries, err = db.History(ctx, store.HistoryOptions{Day: day, Limit: limit})
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tDAY\tPART 1\tPART 2\tTIME\tSTATUS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%02d\t%s\t%s\t%s\t%s\n",
			e.RunID[:8], e.StartedAt.Local().Format(time.DateTime), e.Day,
			e.Answer.Part1, e.Answer.Part2, e.Duration.Round(time.Microsecond), e.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d results\n", len(entries))
	return nil
}
