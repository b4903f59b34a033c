// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/namedata/pkg/namepb"
	"github.com/pdiddy/namedata/pkg/types"
)

// Artifact describes one written output file.
type Artifact struct {
	Path string
	Size int64
}

// Summary holds the outcome of an export run.
type Summary struct {
	FirstNames int
	LastNames  int
	Artifacts  []Artifact
}

// Total returns the number of records exported across both datasets.
func (s Summary) Total() int {
	return s.FirstNames + s.LastNames
}

// Run executes the full conversion: schema check, load both source
// mappings, project them into datasets, serialize the first-only,
// last-only, and combined artifacts, and compress each to cfg.OutputDir.
// Progress and the final size report are written to w. Any failure aborts
// the run; artifacts after the failing one are not written.
func Run(cfg types.ExportConfig, w io.Writer) (Summary, error) {
	var summary Summary

	// The binary schema is an external contract; refuse to do any I/O
	// with bindings that do not match it.
	if err := namepb.Available(); err != nil {
		return summary, fmt.Errorf("schema bindings unavailable: %w", err)
	}

	fmt.Fprintln(w, "Loading source mappings...")
	firstMap, err := Load(cfg.FirstPath)
	if err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "  %d first names\n", len(firstMap.Entries))

	lastMap, err := Load(cfg.LastPath)
	if err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "  %d last names\n", len(lastMap.Entries))

	first := Project(firstMap, types.LabelFirst)
	last := Project(lastMap, types.LabelLast)
	summary.FirstNames = first.Len()
	summary.LastNames = last.Len()

	firstBytes, err := namepb.MarshalDataset(first)
	if err != nil {
		return summary, fmt.Errorf("serializing first names: %w", err)
	}
	lastBytes, err := namepb.MarshalDataset(last)
	if err != nil {
		return summary, fmt.Errorf("serializing last names: %w", err)
	}
	combinedBytes, err := namepb.MarshalCombined(types.CombinedDataset{First: first, Last: last})
	if err != nil {
		return summary, fmt.Errorf("serializing combined dataset: %w", err)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return summary, &WriteError{Path: cfg.OutputDir, Err: err}
		}
	}

	outputs := []struct {
		name string
		data []byte
	}{
		{types.FirstNamesFile, firstBytes},
		{types.LastNamesFile, lastBytes},
		{types.CombinedNamesFile, combinedBytes},
	}

	fmt.Fprintln(w, "Writing artifacts...")
	for _, out := range outputs {
		path := filepath.Join(cfg.OutputDir, out.name)
		if err := CompressAndWrite(out.data, path, cfg.CompressionLevel); err != nil {
			return summary, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return summary, &WriteError{Path: path, Err: err}
		}
		summary.Artifacts = append(summary.Artifacts, Artifact{Path: path, Size: info.Size()})
	}

	fmt.Fprintln(w, "\nGenerated files:")
	for _, a := range summary.Artifacts {
		fmt.Fprintf(w, "  %s: %.2f MB\n", a.Path, float64(a.Size)/(1024*1024))
	}

	if err := WriteManifest(summary, cfg.OutputDir); err != nil {
		fmt.Fprintf(w, "warning: manifest write failed: %v\n", err)
	}

	return summary, nil
}
