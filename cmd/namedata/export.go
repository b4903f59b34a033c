// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/namedata/internal/export"
	"github.com/pdiddy/namedata/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert the source mappings into binary-schema artifacts",
	Long: `Export loads the first-name and last-name source mappings (gzip-compressed
JSON), re-encodes each record into the binary schema, and writes three
compressed artifacts to the output directory: first_names.pb.gz,
last_names.pb.gz, and combined_names.pb.gz.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd)
	if cfg.FirstPath == "" || cfg.LastPath == "" {
		return fmt.Errorf("source mappings required: provide --first and --last")
	}

	summary, err := export.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\nExported %d records.\n", summary.Total())
	return nil
}

func exportConfig(cmd *cobra.Command) types.ExportConfig {
	first, _ := cmd.Flags().GetString("first")
	if first == "" {
		first = viper.GetString("export.first_path")
	}
	last, _ := cmd.Flags().GetString("last")
	if last == "" {
		last = viper.GetString("export.last_path")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = viper.GetString("export.output_dir")
	}
	level, _ := cmd.Flags().GetInt("level")
	if level == 0 {
		level = viper.GetInt("export.compression_level")
	}

	return types.ExportConfig{
		FirstPath:        first,
		LastPath:         last,
		OutputDir:        out,
		CompressionLevel: level,
	}
}

func init() {
	exportCmd.Flags().String("first", "", "gzip-compressed JSON mapping of first names")
	exportCmd.Flags().String("last", "", "gzip-compressed JSON mapping of last names")
	exportCmd.Flags().String("out", "", "output directory for artifacts (default: current directory)")
	exportCmd.Flags().Int("level", 0, "gzip compression level for artifacts, 1-9 (default: library default)")

	rootCmd.AddCommand(exportCmd)
}
