// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"strings"

	"github.com/pdiddy/namedata/pkg/types"
)

// Table provides case-insensitive name lookup over a combined dataset.
type Table struct {
	first map[string]types.NameRecord
	last  map[string]types.NameRecord
}

// Normalize maps a name to its lookup key: trimmed and upper-cased.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewTable builds a lookup table from a combined dataset. When the source
// carries duplicate normalized names the last record wins, matching map
// insertion order.
func NewTable(c types.CombinedDataset) *Table {
	t := &Table{
		first: make(map[string]types.NameRecord, c.First.Len()),
		last:  make(map[string]types.NameRecord, c.Last.Len()),
	}
	for _, r := range c.First.Records {
		t.first[Normalize(r.Name)] = r
	}
	for _, r := range c.Last.Records {
		t.last[Normalize(r.Name)] = r
	}
	return t
}

// First looks up a first-name record.
func (t *Table) First(name string) (types.NameRecord, bool) {
	r, ok := t.first[Normalize(name)]
	return r, ok
}

// Last looks up a last-name record.
func (t *Table) Last(name string) (types.NameRecord, bool) {
	r, ok := t.last[Normalize(name)]
	return r, ok
}

// Counts returns the number of first- and last-name entries in the table.
func (t *Table) Counts() (first, last int) {
	return len(t.first), len(t.last)
}
