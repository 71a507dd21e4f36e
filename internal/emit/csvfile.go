// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/errdex/pkg/types"
)

// csvHeader is the fixed column set of the CSV artifact.
var csvHeader = []string{"Code", "Name", "Category", "Description"}

// WriteCSV emits the spreadsheet artifact with one row per record.
func WriteCSV(path string, records []types.ErrorCode, _ types.ExtractionConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{strconv.Itoa(r.Code), r.Name, string(r.Category), r.Description}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for code %d: %w", r.Code, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return f.Close()
}
