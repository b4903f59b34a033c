// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest describes the artifacts produced by an export run. It is
// written next to the artifacts so consumers can check what they are
// downloading without decoding anything.
type Manifest struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	FirstNames  int             `yaml:"first_names"`
	LastNames   int             `yaml:"last_names"`
	Artifacts   []ManifestEntry `yaml:"artifacts"`
}

// ManifestEntry holds the file-level fields for one artifact.
type ManifestEntry struct {
	File string `yaml:"file"`
	Size int64  `yaml:"size"`
}

const manifestFile = "manifest.yaml"

// WriteManifest writes the run manifest to dir/manifest.yaml.
func WriteManifest(s Summary, dir string) error {
	m := Manifest{
		GeneratedAt: time.Now().UTC(),
		FirstNames:  s.FirstNames,
		LastNames:   s.LastNames,
	}
	for _, a := range s.Artifacts {
		m.Artifacts = append(m.Artifacts, ManifestEntry{
			File: filepath.Base(a.Path),
			Size: a.Size,
		})
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(dir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
