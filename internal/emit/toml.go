// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/errdex/pkg/types"
)

// WriteTOML emits the configuration-style artifact: a comment header
// followed by one [[error]] section per record. The exact layout
// (comment lines, folded multiline strings for long descriptions) is a
// compatibility contract with downstream consumers, which is why this
// emitter formats by hand instead of using a marshaller.
func WriteTOML(path string, records []types.ErrorCode, cfg types.ExtractionConfig) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Error codes extracted from %s\n", cfg.Source.Source)
	fmt.Fprintf(&b, "# Pages: %s\n", cfg.Source.Pages)
	fmt.Fprintf(&b, "# Version: %s\n", cfg.Source.Version)
	fmt.Fprintf(&b, "# Extraction Date: %s\n", cfg.Source.ExtractionDate)
	fmt.Fprintf(&b, "# Total Codes: %d\n\n", len(records))

	for _, r := range records {
		b.WriteString("[[error]]\n")
		fmt.Fprintf(&b, "code = %d\n", r.Code)
		fmt.Fprintf(&b, "name = %q\n", r.Name)
		fmt.Fprintf(&b, "category = %q\n", r.Category)

		desc := strings.ReplaceAll(r.Description, `"`, `\"`)
		if strings.Contains(desc, "\n") || len(desc) > 80 {
			fmt.Fprintf(&b, "description = \"\"\"\\\n%s\\\n\"\"\"\n", desc)
		} else {
			fmt.Fprintf(&b, "description = \"%s\"\n", desc)
		}

		b.WriteString("\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
