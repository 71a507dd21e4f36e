// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/errdex/pkg/types"
)

const reportFile = "extraction-report.yaml"

// RunReport summarizes one extraction run for later inspection.
type RunReport struct {
	Source     types.SourceInfo `yaml:"source"`
	Strategy   string           `yaml:"strategy"`
	TotalCodes int              `yaml:"total_codes"`
	MinCode    int              `yaml:"min_code"`
	MaxCode    int              `yaml:"max_code"`
	Artifacts  []string         `yaml:"artifacts"`
}

// NewRunReport builds a report for a finalized (sorted, deduplicated)
// record set parsed by the named strategy.
func NewRunReport(records []types.ErrorCode, strategy string, artifacts []string, info types.SourceInfo) RunReport {
	report := RunReport{
		Source:     info,
		Strategy:   strategy,
		TotalCodes: len(records),
		Artifacts:  artifacts,
	}
	if len(records) > 0 {
		report.MinCode = records[0].Code
		report.MaxCode = records[len(records)-1].Code
	}
	return report
}

// WriteReport marshals the run report to StructuredDir/extraction-report.yaml
// and returns the path written.
func WriteReport(report RunReport, cfg types.ExtractionConfig) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	path := filepath.Join(cfg.StructuredDir, reportFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
