package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aoc2017/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of aoc2017",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aoc2017 %s (puzzles from %d)\n", version, types.Year)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
