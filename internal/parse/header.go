// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/errdex/pkg/types"
)

// headerPattern matches section headers of the form "## r(N) - Title".
// The separator between code and title is optional and may be any dash.
var headerPattern = regexp.MustCompile(`(?m)^##\s+r\((\d+)\)\s*[-–—]?\s*(.+)$`)

// rulePattern matches horizontal rule lines stripped from section bodies.
var rulePattern = regexp.MustCompile(`(?m)^---+$`)

// parseHeaders handles the header-segmented form. Each header's scope runs
// from the end of its header line to the start of the next header (or end
// of document); the normalized scope text becomes the description.
func parseHeaders(content, version string) []types.ErrorCode {
	matches := headerPattern.FindAllStringSubmatchIndex(content, -1)

	var records []types.ErrorCode
	for i, m := range matches {
		code, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			continue
		}
		name := strings.TrimSpace(content[m[4]:m[5]])

		start := m[1]
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		description := strings.TrimSpace(content[start:end])
		description = rulePattern.ReplaceAllString(description, "")
		description = types.CollapseWhitespace(description)
		if description == "" {
			description = types.NoDescription
		}

		records = append(records, types.NewErrorCode(code, name, description, nil, version))
	}
	return records
}
