// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"io"

	"github.com/pdiddy/errdex/pkg/types"
)

// summaryRanges groups codes for the per-range breakdown printed after
// validation. The labels are display buckets, not the classifier table.
var summaryRanges = []struct {
	lo, hi int
	label  string
}{
	{1, 99, "General"},
	{100, 199, "Syntax/Command"},
	{200, 299, "Data/Variable"},
	{300, 599, "File/IO"},
	{600, 699, "File errors"},
	{700, 899, "Network/System"},
	{900, 999, "Memory/Resources"},
}

// Summary writes extraction statistics for the validated document: totals,
// code range, source metadata, and a per-range count breakdown.
func Summary(w io.Writer, doc *types.CodesDocument) {
	codes := make([]int, len(doc.Errors))
	for i, e := range doc.Errors {
		codes[i] = e.Code
	}

	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Total error codes: %d\n", len(codes))
	if len(codes) > 0 {
		fmt.Fprintf(w, "  Code range: %d - %d\n", minInt(codes), maxInt(codes))
	}
	fmt.Fprintf(w, "  Source: %s\n", doc.Source)
	fmt.Fprintf(w, "  Pages: %s\n", doc.Pages)
	fmt.Fprintf(w, "  Extraction date: %s\n", doc.ExtractionDate)

	fmt.Fprintln(w, "  Error codes by range:")
	for _, r := range summaryRanges {
		count := 0
		for _, c := range codes {
			if c >= r.lo && c <= r.hi {
				count++
			}
		}
		if count > 0 {
			fmt.Fprintf(w, "    r(%3d)-r(%3d) [%-20s]: %3d codes\n", r.lo, r.hi, r.label, count)
		}
	}
}

func minInt(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxInt(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
