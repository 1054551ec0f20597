package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aoc2017/internal/calendar"
	"github.com/pdiddy/aoc2017/internal/input"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days of the calendar and where their input comes from",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DAY\tTITLE\tINPUT")
		for _, p := range calendar.Registry().Puzzles() {
			source := "missing"
			switch {
			case input.Exists(cfg.Run.InputConfig, p.Day):
				source = input.Path(cfg.Run.InputConfig, p.Day)
			case p.DefaultInput != "":
				source = "built-in"
			}
			fmt.Fprintf(tw, "%02d\t%s\t%s\n", p.Day, p.Title, source)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
