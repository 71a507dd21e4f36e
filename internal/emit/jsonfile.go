// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/errdex/pkg/types"
)

// WriteJSON emits the machine-consumption artifact: source metadata plus
// the record array. Absent reference lists are omitted rather than
// serialized as null.
func WriteJSON(path string, records []types.ErrorCode, cfg types.ExtractionConfig) error {
	doc := types.CodesDocument{
		Source:         cfg.Source.Source,
		Pages:          cfg.Source.Pages,
		ExtractionDate: cfg.Source.ExtractionDate,
		Version:        cfg.Source.Version,
		TotalCodes:     len(records),
		Errors:         records,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
