// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"

	"github.com/pdiddy/errdex/pkg/types"
)

// tablePattern matches one row of a three-column pipe-delimited table:
// | code | name | description |. Rows are independent; there is no
// cross-row state, so header and separator rows simply fail to match.
var tablePattern = regexp.MustCompile(`\|\s*(\d+)\s*\|\s*([^|]+?)\s*\|\s*([^|]+?)\s*\|`)

// parseTable handles the tabular form.
func parseTable(content, version string) []types.ErrorCode {
	var records []types.ErrorCode
	for _, m := range tablePattern.FindAllStringSubmatch(content, -1) {
		code, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		records = append(records, types.NewErrorCode(code, m[2], m[3], nil, version))
	}
	return records
}
