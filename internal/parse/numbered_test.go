// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberedList_ContinuationAppended(t *testing.T) {
	content := " 601. file not found\n    The file could not be located.\n 603. file not readable\n"
	records := parseNumberedList(content, "18")
	require.Len(t, records, 2)

	assert.Equal(t, 601, records[0].Code)
	assert.Equal(t, "file not found", records[0].Name)
	assert.Equal(t, "file not found The file could not be located.", records[0].Description)

	assert.Equal(t, 603, records[1].Code)
	assert.Equal(t, "file not readable", records[1].Description)
}

func TestParseNumberedList_ShortFirstLineIsName(t *testing.T) {
	records := parseNumberedList(" 1. short name here\n", "18")
	require.Len(t, records, 1)
	assert.Equal(t, "short name here", records[0].Name)
}

func TestParseNumberedList_LongFirstLineUsesFirstSentence(t *testing.T) {
	long := strings.Repeat("word ", 25) + "ends here. And then an explanation follows."
	records := parseNumberedList(" 1. "+long+"\n", "18")
	require.Len(t, records, 1)
	assert.Equal(t, strings.Repeat("word ", 25)+"ends here.", records[0].Name)
}

func TestParseNumberedList_LongSentencelessLineTruncates(t *testing.T) {
	long := strings.Repeat("x", 120)
	records := parseNumberedList(" 1. "+long+"\n", "18")
	require.Len(t, records, 1)
	assert.Equal(t, long[:80], records[0].Name)
}

func TestParseNumberedList_ReferencesFromFullDescription(t *testing.T) {
	content := " 198. invalid syntax\n    See [D] append. Also [R] ranksum.\n"
	records := parseNumberedList(content, "18")
	require.Len(t, records, 1)
	assert.Equal(t, []string{"[D] append", "[R] ranksum"}, records[0].References)
}

func TestParseNumberedList_NoRecordsInPlainProse(t *testing.T) {
	assert.Empty(t, parseNumberedList("nothing numbered here\n", "18"))
}
