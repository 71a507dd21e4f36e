// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/errdex/pkg/types"
)

// numberedPattern matches lines of the form "N. text" where N is the code.
var numberedPattern = regexp.MustCompile(`(?m)^\s*(\d+)\.\s+(.+)$`)

// numberedLead recognizes continuation text that actually begins another
// numbered entry, which must not be folded into the previous description.
var numberedLead = regexp.MustCompile(`^\s*\d+\.`)

// firstSentence captures text up to and including the first period.
var firstSentence = regexp.MustCompile(`^([^.]+\.)`)

// parseNumberedList handles the numbered-list form found in manual
// appendices. The remainder of the numbered line starts the description;
// unconsumed text up to the next numbered line is appended as continuation.
// Cross-references are extracted from the full description text.
func parseNumberedList(content, version string) []types.ErrorCode {
	matches := numberedPattern.FindAllStringSubmatchIndex(content, -1)

	var records []types.ErrorCode
	for i, m := range matches {
		code, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			continue
		}
		firstLine := strings.TrimSpace(content[m[4]:m[5]])

		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		continuation := strings.TrimSpace(content[m[1]:end])

		description := firstLine
		if continuation != "" && !numberedLead.MatchString(continuation) {
			description += " " + continuation
		}

		records = append(records, types.NewErrorCode(
			code,
			numberedName(firstLine),
			description,
			ExtractReferences(description),
			version,
		))
	}
	return records
}

// numberedName derives the record name from the first line of a numbered
// entry: the line verbatim when short, otherwise the first sentence, or
// the first 80 characters as a last resort.
func numberedName(firstLine string) string {
	candidate := types.CollapseWhitespace(firstLine)
	if len(candidate) <= 100 {
		return candidate
	}
	if m := firstSentence.FindStringSubmatch(candidate); m != nil {
		return strings.TrimSpace(m[1])
	}
	return candidate[:80]
}
