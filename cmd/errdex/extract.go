// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/errdex/internal/emit"
	"github.com/pdiddy/errdex/internal/parse"
	"github.com/pdiddy/errdex/internal/store"
	"github.com/pdiddy/errdex/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract error codes from the raw reference document",
	Long: `Extract reads the raw reference document, recovers error-code records
with the strategy-chain parser, and writes every output artifact: cleaned
Markdown, TOML, JSON, CSV, a generated Go source table, the SQLite code
database, and a YAML run report.

The run fails when the input document is missing or no parsing strategy
recovers any records.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig(cmd)

	fmt.Fprintf(os.Stderr, "parsing error codes from %s\n", cfg.InputPath)

	records, strategy, err := parse.ParseFile(cfg.InputPath, cfg.Source.Version)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "extracted %d error codes (range %d - %d) via %s strategy\n",
		len(records), records[0].Code, records[len(records)-1].Code, strategy)

	paths, err := emit.EmitAll(records, cfg, os.Stderr)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Replace(context.Background(), records, cfg.Source); err != nil {
		return fmt.Errorf("storing code database: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", cfg.DBPath)
	paths = append(paths, cfg.DBPath)

	report := emit.NewRunReport(records, strategy, paths, cfg.Source)
	reportPath, err := emit.WriteReport(report, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", reportPath)

	return nil
}

// extractionConfig assembles the extraction settings from flags, the
// config file, and built-in defaults. The extraction date stamp is taken
// once per run and threaded through every emitter.
func extractionConfig(cmd *cobra.Command) types.ExtractionConfig {
	return types.ExtractionConfig{
		InputPath:     stringSetting(cmd, "input", "extract.input"),
		DocsDir:       stringSetting(cmd, "docs-dir", "extract.docs_dir"),
		StructuredDir: stringSetting(cmd, "structured-dir", "extract.structured_dir"),
		GenPath:       stringSetting(cmd, "gen-path", "extract.gen_path"),
		GenPackage:    stringSetting(cmd, "gen-package", "extract.gen_package"),
		DBPath:        stringSetting(cmd, "db", "extract.db_path"),
		Source: types.SourceInfo{
			Source:         stringSetting(cmd, "source", "source.name"),
			Pages:          stringSetting(cmd, "pages", "source.pages"),
			Version:        stringSetting(cmd, "doc-version", "source.version"),
			ExtractionDate: time.Now().Format("2006-01-02"),
		},
	}
}

func init() {
	extractCmd.Flags().String("input", "docs/markdown/error-codes-raw.md", "raw reference document to parse")
	extractCmd.Flags().String("docs-dir", "docs/markdown", "directory for the cleaned Markdown artifact")
	extractCmd.Flags().String("structured-dir", "docs/structured", "directory for TOML/JSON/CSV artifacts and the run report")
	extractCmd.Flags().String("gen-path", "gen/codes_gen.go", "generated Go source table file")
	extractCmd.Flags().String("gen-package", "codes", "package clause for the generated file")
	extractCmd.Flags().String("db", "index/error-codes.db", "SQLite code database")
	extractCmd.Flags().String("source", "Programming Manual", "source document name")
	extractCmd.Flags().String("pages", "209-223", "source page range")
	extractCmd.Flags().String("doc-version", "18", "source document revision tag")

	rootCmd.AddCommand(extractCmd)
}
