// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aoc2017/internal/calendar"
	"github.com/pdiddy/aoc2017/internal/logging"
	"github.com/pdiddy/aoc2017/internal/runner"
	"github.com/pdiddy/aoc2017/internal/store"
	"github.com/pdiddy/aoc2017/pkg/types"
)

var solveCmd = &cobra.Command{
	Use:   "solve [days...]",
	Short: "Solve one or more days",
	Long: `Solve runs the solvers for the selected days and prints both answers
for each. Days may be given as 7, 07, day07, ranges such as 1-5, or all;
no arguments selects every day.

Answers are checked against the answers file when it knows them, and the
run is recorded in the history database unless --no-record is given.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("answers", "", "YAML file of known answers (default answers.yaml)")
	solveCmd.Flags().Int("parallel", 0, "maximum days solved at once (default: number of CPUs)")
	solveCmd.Flags().Duration("timeout", 0, "time limit per day (default: none)")
	solveCmd.Flags().Bool("no-record", false, "do not record the run in the history database")
	solveCmd.Flags().Bool("from-history", false, "verify against the latest recorded answers instead of the answers file")
	solveCmd.Flags().Bool("json", false, "print results as JSON")

	viper.BindPFlag("answers_file", solveCmd.Flags().Lookup("answers"))
	viper.BindPFlag("parallel", solveCmd.Flags().Lookup("parallel"))
	viper.BindPFlag("timeout", solveCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	reg := calendar.Registry()
	days, err := reg.ParseDays(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	noRecord, _ := cmd.Flags().GetBool("no-record")
	fromHistory, _ := cmd.Flags().GetBool("from-history")

	var db *store.Store
	if !noRecord || fromHistory {
		if db, err = store.Open(cfg.Store); err != nil {
			return err
		}
		defer db.Close()
	}

	var answers runner.Answers
	if fromHistory {
		known, err := db.Answers(ctx)
		if err != nil {
			return err
		}
		answers = runner.Answers(known)
	} else if answers, err = runner.LoadAnswers(cfg.Run.AnswersFile); err != nil {
		return err
	}

	started := time.Now()
	results, runErr := runner.Run(ctx, reg, days, runner.Options{
		Input:    cfg.Run.InputConfig,
		Answers:  answers,
		Parallel: cfg.Run.Parallel,
		Timeout:  cfg.Run.Timeout,
	})
	if results == nil {
		return runErr
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	var summary runner.Summary
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
		summary = runner.Summarize(results)
	} else {
		summary = runner.Print(os.Stdout, results)
	}

	if !noRecord && runErr == nil {
		id, err := db.Record(context.Background(), started, results)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		log := logging.WithComponent("solve")
		log.Info().Str("run", id).Int("days", len(results)).Msg("run recorded")
	}

	if runErr != nil {
		return runErr
	}
	if summary.HasFailures() {
		bad := summary.Total - summary.ByStatus[types.StatusOK] - summary.ByStatus[types.StatusUnverified]
		return fmt.Errorf("%d day(s) not solved correctly", bad)
	}
	return nil
}
