// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/errdex/pkg/types"
)

// inlinePattern matches bare "r(N)" markers followed by an optional
// separator and trailing text on the same line.
var inlinePattern = regexp.MustCompile(`r\((\d+)\)\s*[:-]?\s*([^\n]+)`)

// parseInline handles the loosest form: inline markers anywhere in the
// text. The trailing text splits into name/description on the first
// period, else on the first hyphen, else the whole text serves as both.
// The split priority is a compatibility contract with downstream consumers
// of the generated table; do not reorder it.
func parseInline(content, version string) []types.ErrorCode {
	var records []types.ErrorCode
	for _, m := range inlinePattern.FindAllStringSubmatch(content, -1) {
		code, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		rest := strings.TrimSpace(m[2])

		var name, description string
		switch {
		case strings.Contains(rest, "."):
			name, description = splitOnce(rest, ".")
		case strings.Contains(rest, "-"):
			name, description = splitOnce(rest, "-")
		default:
			name = rest
		}

		if description == "" {
			description = name
		}

		records = append(records, types.NewErrorCode(code, name, description, nil, version))
	}
	return records
}

// splitOnce splits s at the first occurrence of sep, trimming both halves.
func splitOnce(s, sep string) (string, string) {
	before, after, _ := strings.Cut(s, sep)
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
