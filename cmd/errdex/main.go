// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the errdex CLI: a one-shot batch
// tool that extracts error-code records from a reference document,
// emits the canonical artifacts, and validates that they agree.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the errdex CLI.
var rootCmd = &cobra.Command{
	Use:   "errdex",
	Short: "Extract and validate diagnostic error-code references",
	Long: `errdex converts a loosely structured error-code reference document into
canonical machine-usable artifacts (cleaned Markdown, TOML, JSON, CSV, a
generated Go source table, and a SQLite database), then verifies that the
emitted representations agree with each other and with fixed correctness
rules.

Each run is a short-lived batch job: extract parses the raw document and
writes every artifact, validate reads the JSON and CSV artifacts back and
reports discrepancies, and explain looks up a single code.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./errdex.yaml or ~/.config/errdex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("errdex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "errdex"))
		}
	}

	viper.SetEnvPrefix("ERRDEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string setting: an explicitly set flag wins,
// then the config file / environment, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// intSetting resolves an int setting with the same precedence as
// stringSetting.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// intSliceSetting resolves an int-slice setting with the same precedence
// as stringSetting.
func intSliceSetting(cmd *cobra.Command, flag, key string) []int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetIntSlice(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetIntSlice(key)
	}
	v, _ := cmd.Flags().GetIntSlice(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
