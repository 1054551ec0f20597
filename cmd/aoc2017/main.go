// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aoc2017 CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aoc2017/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds one file per credential.
const secretsDir = ".secrets/"

// rootCmd is the base command for the aoc2017 CLI.
var rootCmd = &cobra.Command{
	Use:   "aoc2017",
	Short: "Solve the 2017 Advent of Code calendar",
	Long: `aoc2017 solves all 25 days of the 2017 Advent of Code calendar.

Inputs live in inputs/dayNN.txt and can be downloaded with fetch once a
session cookie is stored in .secrets/aoc-session. Every solve run is
recorded in a SQLite history database under data/.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Configure(logging.Config{
			Level:   viper.GetString("log_level"),
			Output:  os.Stderr,
			Console: true,
		})
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./aoc2017.yaml or ~/.config/aoc2017/aoc2017.yaml)")
	pf.String("inputs-dir", "", "directory holding dayNN.txt inputs (default inputs)")
	pf.String("data-dir", "", "directory holding the history database (default data)")
	pf.String("log-level", "", "diagnostic log level: debug, info, warn, error")

	viper.BindPFlag("inputs_dir", pf.Lookup("inputs-dir"))
	viper.BindPFlag("data_dir", pf.Lookup("data-dir"))
	viper.BindPFlag("log_level", pf.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aoc2017")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aoc2017"))
		}
	}

	viper.SetEnvPrefix("AOC2017")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
