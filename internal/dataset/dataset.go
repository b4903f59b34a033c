// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads exported schema artifacts back into the in-memory
// model and provides name lookup over them. It is the consumer-side
// counterpart of internal/export and backs the inspect and lookup commands.
package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/pdiddy/namedata/pkg/namepb"
	"github.com/pdiddy/namedata/pkg/types"
)

// ReadDataset reads a single-category artifact (first_names.pb.gz or
// last_names.pb.gz). Files without a .gz suffix are read as raw wire bytes.
func ReadDataset(path, label string) (types.NameDataset, error) {
	data, err := readFile(path)
	if err != nil {
		return types.NameDataset{Label: label}, err
	}
	d, err := namepb.UnmarshalDataset(data, label)
	if err != nil {
		return d, fmt.Errorf("decoding %s: %w", path, err)
	}
	return d, nil
}

// ReadCombined reads a combined_names.pb.gz artifact.
func ReadCombined(path string) (types.CombinedDataset, error) {
	data, err := readFile(path)
	if err != nil {
		return types.CombinedDataset{}, err
	}
	c, err := ReadCombinedBytes(data)
	if err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, nil
}

// ReadCombinedBytes decodes a combined artifact held in memory. Gzip
// compression is detected by the stream magic so both compressed and raw
// copies (embedded data, test fixtures) decode the same way.
func ReadCombinedBytes(data []byte) (types.CombinedDataset, error) {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return types.CombinedDataset{}, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()

		decompressed, err := io.ReadAll(gz)
		if err != nil {
			return types.CombinedDataset{}, fmt.Errorf("gzip: %w", err)
		}
		data = decompressed
	}
	return namepb.UnmarshalCombined(data)
}

// readFile reads path, transparently decompressing .gz files.
func readFile(path string) ([]byte, error) {
	if !strings.HasSuffix(path, ".gz") {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: gzip: %w", path, err)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
