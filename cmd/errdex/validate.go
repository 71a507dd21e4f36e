// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/errdex/internal/validate"
	"github.com/pdiddy/errdex/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check emitted artifacts for consistency and completeness",
	Long: `Validate reads the JSON and CSV artifacts back and checks them against
fixed correctness rules: required codes present, no duplicates, no empty
descriptions, and the same code set in both artifacts. Findings are
accumulated and reported together.

Large gaps between consecutive codes are reported as advisory warnings;
they never affect the exit status.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := validationConfig(cmd)

	report, doc, err := validate.Run(cfg)
	if err != nil {
		return err
	}

	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	validate.Summary(os.Stdout, doc)

	if !report.OK() {
		return fmt.Errorf("%d validation check(s) failed", len(report.Failures))
	}
	fmt.Println("All validation checks passed.")
	return nil
}

func validationConfig(cmd *cobra.Command) types.ValidationConfig {
	return types.ValidationConfig{
		JSONPath:      stringSetting(cmd, "json", "validate.json_path"),
		CSVPath:       stringSetting(cmd, "csv", "validate.csv_path"),
		RequiredCodes: intSliceSetting(cmd, "required", "validate.required_codes"),
		GapThreshold:  intSetting(cmd, "gap-threshold", "validate.gap_threshold"),
	}
}

func init() {
	validateCmd.Flags().String("json", "docs/structured/error-codes.json", "JSON artifact to validate")
	validateCmd.Flags().String("csv", "docs/structured/error-codes.csv", "CSV artifact to validate")
	validateCmd.Flags().IntSlice("required", []int{1, 198, 199, 601, 603, 950}, "codes that must be present")
	validateCmd.Flags().Int("gap-threshold", 20, "consecutive-code gap that triggers an advisory warning")

	rootCmd.AddCommand(validateCmd)
}
