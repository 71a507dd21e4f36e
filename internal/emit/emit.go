// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit serializes the final record set into its output artifacts.
// Each emitter is independent and derives everything from the record set
// plus the source metadata; none of them feeds another.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/errdex/pkg/types"
)

const (
	markdownFile = "error-codes.md"
	tomlFile     = "error-codes.toml"
	jsonFile     = "error-codes.json"
	csvFile      = "error-codes.csv"
)

// MarkdownPath returns the cleaned Markdown artifact path for cfg.
func MarkdownPath(cfg types.ExtractionConfig) string {
	return filepath.Join(cfg.DocsDir, markdownFile)
}

// TOMLPath returns the TOML artifact path for cfg.
func TOMLPath(cfg types.ExtractionConfig) string {
	return filepath.Join(cfg.StructuredDir, tomlFile)
}

// JSONPath returns the JSON artifact path for cfg.
func JSONPath(cfg types.ExtractionConfig) string {
	return filepath.Join(cfg.StructuredDir, jsonFile)
}

// CSVPath returns the CSV artifact path for cfg.
func CSVPath(cfg types.ExtractionConfig) string {
	return filepath.Join(cfg.StructuredDir, csvFile)
}

// EmitAll writes every artifact for the record set sequentially: cleaned
// Markdown, TOML, JSON, CSV, and the generated Go source table. Progress
// lines go to w. It returns the paths written, in order.
func EmitAll(records []types.ErrorCode, cfg types.ExtractionConfig, w io.Writer) ([]string, error) {
	dirs := []string{cfg.DocsDir, cfg.StructuredDir, filepath.Dir(cfg.GenPath)}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	targets := []struct {
		name  string
		path  string
		write func(path string, records []types.ErrorCode, cfg types.ExtractionConfig) error
	}{
		{"markdown", MarkdownPath(cfg), WriteMarkdown},
		{"toml", TOMLPath(cfg), WriteTOML},
		{"json", JSONPath(cfg), WriteJSON},
		{"csv", CSVPath(cfg), WriteCSV},
		{"go", cfg.GenPath, WriteGoTable},
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		if err := t.write(t.path, records, cfg); err != nil {
			return nil, fmt.Errorf("emitting %s artifact: %w", t.name, err)
		}
		fmt.Fprintf(w, "wrote %s\n", t.path)
		paths = append(paths, t.path)
	}

	return paths, nil
}
