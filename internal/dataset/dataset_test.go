// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/pdiddy/namedata/pkg/namepb"
	"github.com/pdiddy/namedata/pkg/types"
)

func sampleCombined() types.CombinedDataset {
	return types.CombinedDataset{
		First: types.NameDataset{
			Label: types.LabelFirst,
			Records: []types.NameRecord{
				{
					Name:    "Alice",
					Country: map[string]float32{"US": 0.9},
					Gender:  map[string]float32{"F": 1.0},
					Rank:    map[string]int32{"US": 5},
				},
			},
		},
		Last: types.NameDataset{
			Label: types.LabelLast,
			Records: []types.NameRecord{
				{
					Name:    "Smith",
					Country: map[string]float32{"US": 0.5},
					Gender:  map[string]float32{},
					Rank:    map[string]int32{},
				},
			},
		},
	}
}

// writeArtifact writes wire bytes to path, gzipped when the path has a .gz suffix.
func writeArtifact(t *testing.T, path string, data []byte) {
	t.Helper()
	if filepath.Ext(path) != ".gz" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadDataset(t *testing.T) {
	c := sampleCombined()
	data, err := namepb.MarshalDataset(c.First)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "first_names.pb.gz")
	writeArtifact(t, path, data)

	got, err := ReadDataset(path, types.LabelFirst)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || got.Records[0].Name != "Alice" {
		t.Errorf("got %+v, want one Alice record", got)
	}
	if got.Label != types.LabelFirst {
		t.Errorf("Label = %q, want %q", got.Label, types.LabelFirst)
	}
}

func TestReadDatasetUncompressed(t *testing.T) {
	c := sampleCombined()
	data, err := namepb.MarshalDataset(c.First)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "first_names.pb")
	writeArtifact(t, path, data)

	got, err := ReadDataset(path, types.LabelFirst)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Errorf("Len() = %d, want 1", got.Len())
	}
}

func TestReadCombined(t *testing.T) {
	c := sampleCombined()
	data, err := namepb.MarshalCombined(c)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "combined_names.pb.gz")
	writeArtifact(t, path, data)

	got, err := ReadCombined(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.First.Len() != 1 || got.Last.Len() != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", got.First.Len(), got.Last.Len())
	}
	if got.First.Records[0].Name != "Alice" || got.Last.Records[0].Name != "Smith" {
		t.Errorf("record names = %q/%q, want Alice/Smith",
			got.First.Records[0].Name, got.Last.Records[0].Name)
	}
}

func TestReadCombinedBytesSniffsGzip(t *testing.T) {
	c := sampleCombined()
	raw, err := namepb.MarshalCombined(c)
	if err != nil {
		t.Fatal(err)
	}

	// Raw wire bytes decode directly.
	got, err := ReadCombinedBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.First.Len() != 1 {
		t.Errorf("raw: First.Len() = %d, want 1", got.First.Len())
	}

	// The same bytes gzipped decode identically.
	path := filepath.Join(t.TempDir(), "combined.pb.gz")
	writeArtifact(t, path, raw)
	compressed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err = ReadCombinedBytes(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if got.First.Len() != 1 {
		t.Errorf("gzipped: First.Len() = %d, want 1", got.First.Len())
	}
}

func TestReadDatasetMissingFile(t *testing.T) {
	_, err := ReadDataset(filepath.Join(t.TempDir(), "nope.pb.gz"), types.LabelFirst)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTableLookup(t *testing.T) {
	table := NewTable(sampleCombined())

	r, ok := table.First("alice")
	if !ok {
		t.Fatal("First(alice) not found, lookup must be case-insensitive")
	}
	if r.Gender["F"] != 1.0 {
		t.Errorf("Gender[F] = %v, want 1.0", r.Gender["F"])
	}

	if _, ok := table.Last("  SMITH  "); !ok {
		t.Error("Last(  SMITH  ) not found, lookup must trim whitespace")
	}

	if _, ok := table.First("Smith"); ok {
		t.Error("Smith is a last name, must not match the first-name table")
	}

	first, last := table.Counts()
	if first != 1 || last != 1 {
		t.Errorf("Counts() = %d/%d, want 1/1", first, last)
	}
}
