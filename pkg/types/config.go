// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default artifact file names produced by the export stage.
const (
	FirstNamesFile    = "first_names.pb.gz"
	LastNamesFile     = "last_names.pb.gz"
	CombinedNamesFile = "combined_names.pb.gz"
)

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// FirstPath is the gzip-compressed JSON mapping of first names.
	FirstPath string `json:"first_path" yaml:"first_path"`

	// LastPath is the gzip-compressed JSON mapping of last names.
	LastPath string `json:"last_path" yaml:"last_path"`

	// OutputDir is the directory the .pb.gz artifacts are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// CompressionLevel is the gzip level for output artifacts (1-9).
	// 0 selects the library default.
	CompressionLevel int `json:"compression_level" yaml:"compression_level"`
}

// IndexConfig holds settings for the SQLite index stage.
type IndexConfig struct {
	// DBPath is the SQLite database file to create (default names.db).
	DBPath string `json:"db_path" yaml:"db_path"`
}
