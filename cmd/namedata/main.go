// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the namedata CLI.
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

// rootCmd is the base command for the namedata CLI.
var rootCmd = &cobra.Command{
	Use:   "namedata",
	Short: "Convert and query the name-frequency dataset",
	Long: `namedata converts the name-frequency dataset from its compressed JSON
container into compressed binary-schema artifacts that downstream services
decode without depending on the source serialization.

Each stage is a subcommand: export writes the artifacts, inspect and lookup
read them back, and index materializes a SQLite database for ad-hoc SQL.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./namedata.yaml or ~/.config/namedata/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("namedata")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "namedata"))
		}
	}

	viper.SetEnvPrefix("NAMEDATA")
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
