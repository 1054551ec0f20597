// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aoc2017/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the latest accepted answers to YAML or JSON",
	Long: `Export writes the most recent accepted answer for every day. The YAML
form is an answers file that solve can verify against; the JSON form
includes run identifiers and timings.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	exportCmd.Flags().StringP("output", "o", "", "output path (default answers.yaml or data/export.json)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	cfg := loadConfig()
	db, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer db.Close()

	switch format {
	case "yaml", "":
		if output == "" {
			output = cfg.Run.AnswersFile
		}
		err = db.ExportYAML(context.Background(), output)
	case "json":
		if output == "" {
			output = filepath.Join(cfg.Store.DataDir, "export.json")
		}
		err = db.ExportJSON(context.Background(), output)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", output)
	return nil
}
