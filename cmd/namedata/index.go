// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/namedata/internal/dataset"
	"github.com/pdiddy/namedata/internal/index"
	"github.com/pdiddy/namedata/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index [artifact]",
	Short: "Build a SQLite index from a combined artifact",
	Long: `Index decodes a combined artifact and materializes it into a SQLite
database (names, countries, genders tables) for ad-hoc SQL queries.
The database contents are replaced on every run.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("index.db_path")
	}

	c, err := dataset.ReadCombined(args[0])
	if err != nil {
		return err
	}

	store, err := index.NewStore(types.IndexConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Build(context.Background(), c, os.Stdout)
	return err
}

func init() {
	indexCmd.Flags().String("db", "", "SQLite database file to create (default: names.db)")

	rootCmd.AddCommand(indexCmd)
}
