// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/errdex/pkg/types"
)

// WriteMarkdown emits the cleaned, re-structured version of the source
// document: a metadata header followed by one rule-separated section per
// record.
func WriteMarkdown(path string, records []types.ErrorCode, cfg types.ExtractionConfig) error {
	var b strings.Builder

	b.WriteString("# Error Codes Reference\n\n")
	fmt.Fprintf(&b, "Extracted from: %s, pages %s\n", cfg.Source.Source, cfg.Source.Pages)
	fmt.Fprintf(&b, "Version: %s\n", cfg.Source.Version)
	fmt.Fprintf(&b, "Extraction Date: %s\n", cfg.Source.ExtractionDate)
	fmt.Fprintf(&b, "Total Error Codes: %d\n\n", len(records))
	b.WriteString("---\n\n")

	for _, r := range records {
		fmt.Fprintf(&b, "## r(%d) - %s\n\n", r.Code, r.Name)
		fmt.Fprintf(&b, "**Category**: %s\n\n", r.Category)
		fmt.Fprintf(&b, "%s\n\n", r.Description)
		if len(r.References) > 0 {
			fmt.Fprintf(&b, "**See also**: %s\n\n", strings.Join(r.References, ", "))
		}
		b.WriteString("---\n\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
