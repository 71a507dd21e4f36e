// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse recovers structured error-code records from reference
// document text whose markup convention is not known in advance. A fixed
// chain of strategies is tried in priority order; the first strategy that
// yields any records wins and later strategies are never consulted, so a
// single run never mixes records from two conventions.
package parse

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdiddy/errdex/pkg/types"
)

// ErrNoRecords indicates that no strategy recovered any records from the
// input text.
var ErrNoRecords = errors.New("no error codes found in input")

// Strategy is one self-contained parsing algorithm for a specific markup
// convention. Parse returns the records it recognized, possibly none.
type Strategy struct {
	Name  string
	Parse func(content, version string) []types.ErrorCode
}

// Strategies returns the strategy chain in priority order: section headers,
// delimited table rows, numbered list, bare inline markers.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "header", Parse: parseHeaders},
		{Name: "table", Parse: parseTable},
		{Name: "numbered-list", Parse: parseNumberedList},
		{Name: "inline", Parse: parseInline},
	}
}

// Parse runs the strategy chain over content and returns the raw records
// from the first strategy that produced any, along with that strategy's
// name. The result is unsorted and may contain duplicate codes; callers
// pass it through Finalize.
func Parse(content, version string) ([]types.ErrorCode, string) {
	for _, s := range Strategies() {
		if records := s.Parse(content, version); len(records) > 0 {
			return records, s.Name
		}
	}
	return nil, ""
}

// ParseFile reads the document at path and returns the finalized record
// set plus the winning strategy name. A missing file and an empty
// extraction are both reported as errors; this tool treats either as a
// failed run.
func ParseFile(path, version string) ([]types.ErrorCode, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading input %s: %w", path, err)
	}

	records, strategy := Parse(string(content), version)
	if len(records) == 0 {
		return nil, "", fmt.Errorf("parsing %s: %w", path, ErrNoRecords)
	}

	return Finalize(records), strategy, nil
}
