// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceInfo identifies the document revision an extraction run consumed.
// Values are threaded explicitly through emitters and reports rather than
// read from package state.
type SourceInfo struct {
	// Source names the reference document (e.g. "Programming Manual v18").
	Source string `json:"source" yaml:"source"`

	// Pages is the page range the raw text was taken from.
	Pages string `json:"pages" yaml:"pages"`

	// Version is the source document revision tag carried on every record.
	Version string `json:"version" yaml:"version"`

	// ExtractionDate is the generation date stamp (YYYY-MM-DD).
	ExtractionDate string `json:"extraction_date" yaml:"extraction_date"`
}

// CodesDocument is the shape of the JSON artifact: source metadata plus the
// full record array.
type CodesDocument struct {
	Source         string      `json:"source"`
	Pages          string      `json:"pages"`
	ExtractionDate string      `json:"extraction_date"`
	Version        string      `json:"version"`
	TotalCodes     int         `json:"total_codes"`
	Errors         []ErrorCode `json:"errors"`
}
