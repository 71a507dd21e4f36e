// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/errdex/pkg/types"
)

func testConfig(t *testing.T) types.ExtractionConfig {
	t.Helper()
	dir := t.TempDir()
	return types.ExtractionConfig{
		InputPath:     filepath.Join(dir, "raw.md"),
		DocsDir:       filepath.Join(dir, "markdown"),
		StructuredDir: filepath.Join(dir, "structured"),
		GenPath:       filepath.Join(dir, "gen", "codes_gen.go"),
		GenPackage:    "codes",
		DBPath:        filepath.Join(dir, "index", "codes.db"),
		Source: types.SourceInfo{
			Source:         "Programming Manual v18",
			Pages:          "209-223",
			Version:        "18",
			ExtractionDate: "2026-08-26",
		},
	}
}

func testRecords() []types.ErrorCode {
	return []types.ErrorCode{
		types.NewErrorCode(1, "Generic error", "Catchall error code.", nil, "18"),
		types.NewErrorCode(199, "Unrecognized command", "The command could not be parsed.", []string{"[U] 11.1", "[D] append"}, "18"),
		types.NewErrorCode(950, "Insufficient memory", strings.Repeat("A very long description. ", 10), nil, "18"),
	}
}

func TestEmitAll_WritesEveryArtifact(t *testing.T) {
	cfg := testConfig(t)
	var progress bytes.Buffer

	paths, err := EmitAll(testRecords(), cfg, &progress)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err, "artifact %s", p)
		assert.Greater(t, info.Size(), int64(0), "artifact %s", p)
		assert.Contains(t, progress.String(), p)
	}
}

func TestWriteMarkdown(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.DocsDir, 0o755))
	path := MarkdownPath(cfg)
	require.NoError(t, WriteMarkdown(path, testRecords(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Error Codes Reference")
	assert.Contains(t, content, "Extracted from: Programming Manual v18, pages 209-223")
	assert.Contains(t, content, "Total Error Codes: 3")
	assert.Contains(t, content, "## r(1) - Generic error")
	assert.Contains(t, content, "**Category**: General")
	assert.Contains(t, content, "**See also**: [U] 11.1, [D] append")
}

func TestWriteTOML(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.StructuredDir, 0o755))
	path := TOMLPath(cfg)
	require.NoError(t, WriteTOML(path, testRecords(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Total Codes: 3")
	assert.Contains(t, content, "[[error]]\ncode = 1\n")
	assert.Contains(t, content, `name = "Generic error"`)
	assert.Contains(t, content, `description = "Catchall error code."`)
	// Long descriptions fold into triple-quoted strings.
	assert.Contains(t, content, "description = \"\"\"\\\n")
}

func TestWriteTOML_EscapesQuotes(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.StructuredDir, 0o755))
	records := []types.ErrorCode{
		types.NewErrorCode(5, "quote", `contains "quoted" text`, nil, "18"),
	}
	path := TOMLPath(cfg)
	require.NoError(t, WriteTOML(path, records, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `description = "contains \"quoted\" text"`)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.StructuredDir, 0o755))
	records := testRecords()
	path := JSONPath(cfg)
	require.NoError(t, WriteJSON(path, records, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc types.CodesDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Programming Manual v18", doc.Source)
	assert.Equal(t, 3, doc.TotalCodes)
	require.Len(t, doc.Errors, 3)
	assert.Equal(t, records[1].References, doc.Errors[1].References)

	// Absent reference lists are omitted, not serialized as null.
	assert.NotContains(t, string(data), `"references": null`)
}

func TestWriteCSV(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.StructuredDir, 0o755))
	path := CSVPath(cfg)
	require.NoError(t, WriteCSV(path, testRecords(), cfg))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Code", "Name", "Category", "Description"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Generic error", rows[1][1])
	assert.Equal(t, "General", rows[1][2])
}

// The JSON and CSV artifacts of one run must carry the same code set.
func TestJSONAndCSVCodeSetsAgree(t *testing.T) {
	cfg := testConfig(t)
	records := testRecords()
	_, err := EmitAll(records, cfg, &bytes.Buffer{})
	require.NoError(t, err)

	jsonData, err := os.ReadFile(JSONPath(cfg))
	require.NoError(t, err)
	var doc types.CodesDocument
	require.NoError(t, json.Unmarshal(jsonData, &doc))

	jsonCodes := map[int]bool{}
	for _, e := range doc.Errors {
		jsonCodes[e.Code] = true
	}

	f, err := os.Open(CSVPath(cfg))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	csvCodes := map[int]bool{}
	for _, row := range rows[1:] {
		code, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		csvCodes[code] = true
	}

	assert.Equal(t, jsonCodes, csvCodes)
}

func TestWriteGoTable(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.GenPath), 0o755))
	require.NoError(t, WriteGoTable(cfg.GenPath, testRecords(), cfg))

	data, err := os.ReadFile(cfg.GenPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "// Code generated by errdex. DO NOT EDIT.")
	assert.Contains(t, content, "package codes")
	assert.Contains(t, content, "type OfficialCode struct")
	assert.Contains(t, content, `{Code: 1, Name: "Generic error", Category: "General", Description: "Catchall error code."},`)
	assert.Contains(t, content, "func LookupOfficial(code uint32) *OfficialCode")
	assert.Contains(t, content, "func AllCodes() []uint32")
}

func TestWriteReport(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.StructuredDir, 0o755))
	records := testRecords()

	report := NewRunReport(records, "header", []string{"a.md", "b.json"}, cfg.Source)
	assert.Equal(t, 1, report.MinCode)
	assert.Equal(t, 950, report.MaxCode)
	assert.Equal(t, 3, report.TotalCodes)

	path, err := WriteReport(report, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got RunReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, report, got)
}
