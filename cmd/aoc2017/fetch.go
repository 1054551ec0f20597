// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aoc2017/internal/calendar"
	"github.com/pdiddy/aoc2017/internal/input"
	"github.com/pdiddy/aoc2017/internal/secrets"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [days...]",
	Short: "Download puzzle inputs from the puzzle website",
	Long: `Fetch downloads the personal puzzle input for each selected day into
the inputs directory. Existing inputs are skipped unless --force is given.

Downloads are authenticated with the session cookie stored in
.secrets/aoc-session or the AOC2017_SESSION environment variable, and are
rate limited to stay polite to the website.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Bool("force", false, "re-download inputs that already exist")
	fetchCmd.Flags().Float64("rate", 0, "maximum requests per second (default 1)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	viper.BindPFlag("fetch.rate", fetchCmd.Flags().Lookup("rate"))
	viper.BindPFlag("fetch.timeout", fetchCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig().Fetch
	days, err := calendar.Registry().ParseDays(args)
	if err != nil {
		return err
	}

	cfg.Force, _ = cmd.Flags().GetBool("force")
	if cfg.Force || len(input.Missing(cfg.InputConfig, days)) > 0 {
		if cfg.Session, err = secrets.Session(secretsDir, viper.GetString("session")); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := input.NewFetcher(cfg, nil).FetchBatch(ctx, days, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d input(s) failed to download", result.Failed)
	}
	return nil
}
