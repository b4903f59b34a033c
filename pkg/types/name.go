// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the namedata pipeline:
// name records, datasets, and per-stage configuration.
package types

// Dataset labels used throughout the pipeline and in the combined artifact.
const (
	LabelFirst = "first"
	LabelLast  = "last"
)

// NameRecord holds the full attribute set for a single name: the per-country
// probability distribution, the per-gender probability distribution (empty
// for last names), and the per-country popularity rank (1 = most popular).
// Ranks that are unknown in the source are omitted from the map entirely.
type NameRecord struct {
	// Name is the record key, unique within its dataset. Never empty.
	Name string

	// Country maps ISO country code to probability. Values are passed
	// through from the source unchecked.
	Country map[string]float32

	// Gender maps "M"/"F" to probability. Empty for last-name records.
	Gender map[string]float32

	// Rank maps ISO country code to popularity rank. Only known ranks
	// are present; there is no sentinel for "unranked".
	Rank map[string]int32
}

// NameDataset is an ordered collection of records for one name category.
// Record order follows the iteration order of the source mapping.
type NameDataset struct {
	Label   string
	Records []NameRecord
}

// Len returns the number of records in the dataset.
func (d NameDataset) Len() int {
	return len(d.Records)
}

// CombinedDataset pairs the first-name and last-name datasets.
type CombinedDataset struct {
	First NameDataset
	Last  NameDataset
}
