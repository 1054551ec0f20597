// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the latest accepted answer per day to path as a YAML
// map of day to answer. The file can be used directly as an answers file.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	answers, err := s.Answers(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	data, err := yaml.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeFile(path, data)
}

// ExportJSON writes the latest accepted result per day to path as a JSON
// array.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	latest, err := s.Latest(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	if latest == nil {
		latest = []Entry{}
	}
	data, err := json.MarshalIndent(latest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
