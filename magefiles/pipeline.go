//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Extract builds the binary and runs the extraction pipeline.
func Extract() error {
	mg.Deps(Build)
	return runBinary("extract")
}

// Validate builds the binary and validates the emitted artifacts.
func Validate() error {
	mg.Deps(Build)
	return runBinary("validate")
}

// Pipeline runs extraction followed by validation.
func Pipeline() error {
	mg.SerialDeps(Extract, Validate)
	fmt.Println("Pipeline complete.")
	return nil
}

func runBinary(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
