// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notescan CLI.
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

// rootCmd is the base command for the notescan CLI.
var rootCmd = &cobra.Command{
	Use:   "notescan",
	Short: "Convert photographed note pages into a LaTeX document via OCR",
	Long: `notescan batch-converts a directory of photographed note pages into a
single LaTeX document. Each image is run through OCR and rendered as one
document section embedding the recognized text and a reference to the source
image.

Recognized text can optionally be ingested into a local SQLite index, which
the search subcommand queries with full-text search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notescan.yaml or ~/.config/notescan/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notescan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notescan"))
		}
	}

	viper.SetEnvPrefix("NOTESCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
