// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// InputPath is the raw reference document to parse.
	InputPath string `json:"input_path" yaml:"input_path"`

	// DocsDir receives the cleaned Markdown artifact.
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// StructuredDir receives the TOML, JSON, and CSV artifacts plus the
	// extraction run report.
	StructuredDir string `json:"structured_dir" yaml:"structured_dir"`

	// GenPath is the generated Go source table file.
	GenPath string `json:"gen_path" yaml:"gen_path"`

	// GenPackage is the package clause written into the generated file.
	GenPackage string `json:"gen_package" yaml:"gen_package"`

	// DBPath is the SQLite code database rebuilt on every run.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Source describes the document revision being extracted.
	Source SourceInfo `json:"source" yaml:"source"`
}

// ValidationConfig holds settings for the validation stage.
type ValidationConfig struct {
	// JSONPath and CSVPath are the artifacts read back and compared.
	JSONPath string `json:"json_path" yaml:"json_path"`
	CSVPath  string `json:"csv_path" yaml:"csv_path"`

	// RequiredCodes must all be present in the extracted set.
	RequiredCodes []int `json:"required_codes" yaml:"required_codes"`

	// GapThreshold is the consecutive-code gap above which an advisory
	// warning is emitted (default 20). Warnings never fail a run.
	GapThreshold int `json:"gap_threshold" yaml:"gap_threshold"`
}
