// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"sort"

	"github.com/pdiddy/errdex/pkg/types"
)

// Finalize produces the canonical record set: sorted ascending by code,
// with only the first record kept for each code. Later duplicates are
// dropped wholesale; fields are never merged. The input slice is not
// modified.
func Finalize(records []types.ErrorCode) []types.ErrorCode {
	sorted := make([]types.ErrorCode, len(records))
	copy(sorted, records)

	// Stable sort so the first occurrence in document order wins among
	// records sharing a code.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})

	unique := sorted[:0]
	seen := make(map[int]bool, len(sorted))
	for _, r := range sorted {
		if seen[r.Code] {
			continue
		}
		seen[r.Code] = true
		unique = append(unique, r)
	}
	return unique
}
