// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/errdex/internal/store"
	"github.com/pdiddy/errdex/pkg/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain CODE",
	Short: "Look up one error code in the extracted database",
	Long: `Explain prints the name, category, description, and cross-references of
an error code from the SQLite database built by extract. Codes absent from
the extracted set fall back to range-based category information.

Accepts both bare numbers and r() syntax:

  errdex explain 199
  errdex explain "r(199)"
  errdex explain 111 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

// explainEntry is the JSON output shape for explain.
type explainEntry struct {
	Code        int            `json:"code"`
	Documented  bool           `json:"documented"`
	Name        string         `json:"name,omitempty"`
	Category    types.Category `json:"category"`
	Description string         `json:"description,omitempty"`
	References  []string       `json:"references,omitempty"`
	Version     string         `json:"version,omitempty"`
}

func runExplain(cmd *cobra.Command, args []string) error {
	code, err := parseCodeArg(args[0])
	if err != nil {
		return err
	}

	dbPath := stringSetting(cmd, "db", "extract.db_path")
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	record, err := st.Lookup(context.Background(), code)
	if err != nil {
		return err
	}

	entry := explainEntry{Code: code, Category: types.CategoryFor(code)}
	if record != nil {
		entry.Documented = true
		entry.Name = record.Name
		entry.Category = record.Category
		entry.Description = record.Description
		entry.References = record.References
		entry.Version = record.SourceVersion
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	case "human", "":
		printExplain(entry)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use human or json", format)
	}
}

// parseCodeArg accepts "199" or "r(199)".
func parseCodeArg(arg string) (int, error) {
	s := strings.TrimSpace(arg)
	s = strings.TrimPrefix(s, "r(")
	s = strings.TrimSuffix(s, ")")

	code, err := strconv.Atoi(s)
	if err != nil || code < 0 {
		return 0, fmt.Errorf("invalid error code %q: expected a number like 199 or r(199)", arg)
	}
	return code, nil
}

func printExplain(e explainEntry) {
	if !e.Documented {
		fmt.Printf("r(%d) is not in the extracted set.\n", e.Code)
		fmt.Printf("Category by range: %s\n", e.Category)
		return
	}

	fmt.Printf("r(%d) - %s\n", e.Code, e.Name)
	fmt.Printf("Category: %s\n", e.Category)
	if e.Version != "" {
		fmt.Printf("Version: %s\n", e.Version)
	}
	fmt.Printf("\n%s\n", e.Description)
	if len(e.References) > 0 {
		fmt.Printf("\nSee also: %s\n", strings.Join(e.References, ", "))
	}
}

func init() {
	explainCmd.Flags().String("db", "index/error-codes.db", "SQLite code database")
	explainCmd.Flags().String("format", "human", "output format: human or json")

	rootCmd.AddCommand(explainCmd)
}
