// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/errdex/pkg/types"
)

const headerDoc = "## r(1) - Generic error\n\nCatchall error code.\n\n## r(199) - Unrecognized command\n\nThe command could not be parsed."

func TestParse_HeaderDocument(t *testing.T) {
	records, strategy := Parse(headerDoc, "18")
	require.Len(t, records, 2)
	assert.Equal(t, "header", strategy)

	assert.Equal(t, 1, records[0].Code)
	assert.Equal(t, "Generic error", records[0].Name)
	assert.Equal(t, "Catchall error code.", records[0].Description)
	assert.Equal(t, types.CategoryGeneral, records[0].Category)

	assert.Equal(t, 199, records[1].Code)
	assert.Equal(t, "Unrecognized command", records[1].Name)
	assert.Equal(t, "The command could not be parsed.", records[1].Description)
	assert.Equal(t, types.CategorySyntax, records[1].Category)
}

func TestParse_FallsBackToNumberedList(t *testing.T) {
	// No headers, no table rows, no inline r() markers: only strategy 3
	// should recognize this text.
	content := " 1. syntax error\n    You typed something wrong.\n 2. connection timed out\n"

	assert.Empty(t, parseHeaders(content, "18"))
	assert.Empty(t, parseTable(content, "18"))

	records, strategy := Parse(content, "18")
	assert.Equal(t, "numbered-list", strategy)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Code)
	assert.Equal(t, 2, records[1].Code)
}

func TestParse_NoMatch(t *testing.T) {
	records, strategy := Parse("nothing to see here\njust prose\n", "18")
	assert.Empty(t, records)
	assert.Equal(t, "", strategy)
}

func TestParse_OnlyFirstStrategyUsed(t *testing.T) {
	// Headers win even when the body would also match the inline form;
	// strategies are mutually exclusive fallbacks, never merged.
	content := "## r(1) - Generic error\n\nSee r(601) - file not found for details.\n"
	records, strategy := Parse(content, "18")
	assert.Equal(t, "header", strategy)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Code)
}

func TestStrategies_Order(t *testing.T) {
	var names []string
	for _, s := range Strategies() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"header", "table", "numbered-list", "inline"}, names)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "error-codes-raw.md")
	require.NoError(t, os.WriteFile(path, []byte(headerDoc), 0o644))

	records, strategy, err := ParseFile(path, "18")
	require.NoError(t, err)
	assert.Equal(t, "header", strategy)
	assert.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "18", r.SourceVersion)
	}
}

func TestParseFile_MissingInput(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "absent.md"), "18")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFile_EmptyExtraction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prose.md")
	require.NoError(t, os.WriteFile(path, []byte("no codes in this document\n"), 0o644))

	_, _, err := ParseFile(path, "18")
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestParseFile_SortedAndDeduplicated(t *testing.T) {
	content := "## r(199) - Later\n\nSecond.\n\n## r(1) - First\n\nFirst.\n\n## r(199) - Duplicate\n\nDropped.\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, _, err := ParseFile(path, "18")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Code)
	assert.Equal(t, 199, records[1].Code)
	assert.Equal(t, "Later", records[1].Name, "first occurrence in document order wins")
}
