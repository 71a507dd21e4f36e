// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate reads emitted artifacts back and checks the extraction
// for internal consistency and completeness. Malformed or missing
// artifacts abort the run; all other checks run to completion and report
// their findings together.
package validate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pdiddy/errdex/pkg/types"
)

// defaultGapThreshold is the consecutive-code gap above which an advisory
// warning is raised.
const defaultGapThreshold = 20

// maxReported caps how many offending codes a single finding lists.
const maxReported = 10

// Report accumulates validation findings. Failures decide the outcome;
// warnings are advisory only.
type Report struct {
	Failures []string
	Warnings []string
}

// OK reports whether every non-advisory check passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

func (r *Report) failf(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Run reads the JSON and CSV artifacts named by cfg and runs all
// consistency checks. It returns an error only when an artifact is
// missing or fails to parse; check findings land in the report.
func Run(cfg types.ValidationConfig) (*Report, *types.CodesDocument, error) {
	doc, err := loadJSON(cfg.JSONPath)
	if err != nil {
		return nil, nil, err
	}
	csvCodes, err := loadCSVCodes(cfg.CSVPath)
	if err != nil {
		return nil, nil, err
	}

	codes := make([]int, len(doc.Errors))
	for i, e := range doc.Errors {
		codes[i] = e.Code
	}

	report := &Report{}
	checkRequired(report, codes, cfg.RequiredCodes)
	checkDuplicates(report, codes)
	checkDescriptions(report, doc.Errors)
	checkCrossArtifact(report, codes, csvCodes)

	threshold := cfg.GapThreshold
	if threshold <= 0 {
		threshold = defaultGapThreshold
	}
	checkGaps(report, codes, threshold)

	return report, doc, nil
}

// loadJSON parses the JSON artifact.
func loadJSON(path string) (*types.CodesDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading JSON artifact %s: %w", path, err)
	}
	var doc types.CodesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON artifact %s: %w", path, err)
	}
	return &doc, nil
}

// loadCSVCodes parses the CSV artifact and returns the codes from its
// first column, skipping the header row.
func loadCSVCodes(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading CSV artifact %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV artifact %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("invalid CSV artifact %s: no header row", path)
	}

	codes := make([]int, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		code, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("invalid CSV artifact %s: row %d: bad code %q", path, i+2, row[0])
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// checkRequired verifies that every required code is present.
func checkRequired(r *Report, codes, required []int) {
	present := make(map[int]bool, len(codes))
	for _, c := range codes {
		present[c] = true
	}

	var missing []int
	for _, c := range required {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		r.failf("missing required error codes: %v", missing)
	}
}

// checkDuplicates fails when any code appears more than once.
func checkDuplicates(r *Report, codes []int) {
	seen := make(map[int]bool, len(codes))
	dupSet := make(map[int]bool)
	for _, c := range codes {
		if seen[c] {
			dupSet[c] = true
		}
		seen[c] = true
	}
	if len(dupSet) > 0 {
		dups := make([]int, 0, len(dupSet))
		for c := range dupSet {
			dups = append(dups, c)
		}
		sort.Ints(dups)
		r.failf("duplicate error codes found: %v", dups)
	}
}

// checkDescriptions fails for records whose description is empty or
// whitespace-only, listing the first offenders and a remainder count.
func checkDescriptions(r *Report, records []types.ErrorCode) {
	var missing []int
	for _, rec := range records {
		if types.CollapseWhitespace(rec.Description) == "" {
			missing = append(missing, rec.Code)
		}
	}
	if len(missing) == 0 {
		return
	}
	if len(missing) > maxReported {
		r.failf("error codes missing descriptions: %v (and %d more)", missing[:maxReported], len(missing)-maxReported)
	} else {
		r.failf("error codes missing descriptions: %v", missing)
	}
}

// checkCrossArtifact compares the code sets of the two artifacts in both
// directions.
func checkCrossArtifact(r *Report, jsonCodes, csvCodes []int) {
	onlyJSON := setDifference(jsonCodes, csvCodes)
	onlyCSV := setDifference(csvCodes, jsonCodes)

	if len(onlyJSON) > 0 {
		r.failf("codes in JSON but not CSV: %v", capInts(onlyJSON, maxReported))
	}
	if len(onlyCSV) > 0 {
		r.failf("codes in CSV but not JSON: %v", capInts(onlyCSV, maxReported))
	}
}

// checkGaps flags large gaps between consecutive codes as possible missing
// entries. Advisory only; never fails the run.
func checkGaps(r *Report, codes []int, threshold int) {
	sorted := make([]int, len(codes))
	copy(sorted, codes)
	sort.Ints(sorted)

	type gap struct{ start, end, size int }
	var gaps []gap
	for i := 0; i+1 < len(sorted); i++ {
		if size := sorted[i+1] - sorted[i]; size > threshold {
			gaps = append(gaps, gap{sorted[i], sorted[i+1], size})
		}
	}
	if len(gaps) == 0 {
		return
	}

	shown := gaps
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, g := range shown {
		r.warnf("gap of %d between r(%d) and r(%d): possible missing entries", g.size, g.start, g.end)
	}
	if rest := len(gaps) - len(shown); rest > 0 {
		r.warnf("... and %d more gaps", rest)
	}
}

// setDifference returns the values of a absent from b, sorted ascending.
func setDifference(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, c := range b {
		inB[c] = true
	}
	seen := make(map[int]bool, len(a))
	var diff []int
	for _, c := range a {
		if !inB[c] && !seen[c] {
			seen[c] = true
			diff = append(diff, c)
		}
	}
	sort.Ints(diff)
	return diff
}

// capInts truncates a slice for display.
func capInts(v []int, n int) []int {
	if len(v) > n {
		return v[:n]
	}
	return v
}
