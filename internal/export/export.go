// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export converts the name-frequency source container (gzip-
// compressed JSON mappings of name to attributes) into the compressed
// binary schema artifacts consumed by downstream runtimes.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/pdiddy/namedata/pkg/types"
)

// Attributes mirrors the attribute structure of one source entry. Rank
// values are pointers so a JSON null survives decoding and can be dropped
// during projection instead of turning into a zero.
type Attributes struct {
	Country map[string]float32 `json:"country"`
	Gender  map[string]float32 `json:"gender"`
	Rank    map[string]*int32  `json:"rank"`
}

// Entry is one name with its source attributes.
type Entry struct {
	Name  string
	Attrs Attributes
}

// Mapping is the decoded source container: a name-to-attributes mapping
// with the source's own key order preserved.
type Mapping struct {
	Entries []Entry
}

// Load opens a gzip-compressed JSON object mapping name to attributes. The
// object is decoded token by token so key order is preserved; a plain
// map-based decode would lose it. All failure modes (missing file, bad
// gzip data, non-object JSON) surface as *LoadError.
func Load(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("gzip: %w", err)}
	}
	defer gz.Close()

	dec := json.NewDecoder(gz)

	tok, err := dec.Token()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("top-level value is %v, not an object", tok)}
	}

	m := &Mapping{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("object key is %v, not a string", keyTok)}
		}

		var attrs Attributes
		if err := dec.Decode(&attrs); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("attributes for %q: %w", name, err)}
		}
		m.Entries = append(m.Entries, Entry{Name: name, Attrs: attrs})
	}
	if _, err := dec.Token(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return m, nil
}

// Project converts a source mapping into a NameDataset. Country and gender
// distributions are copied verbatim; rank entries whose value was null are
// dropped. Entry order is preserved. Probability values are not validated,
// matching the source data's permissive contract.
func Project(m *Mapping, label string) types.NameDataset {
	d := types.NameDataset{
		Label:   label,
		Records: make([]types.NameRecord, 0, len(m.Entries)),
	}
	for _, e := range m.Entries {
		rec := types.NameRecord{
			Name:    e.Name,
			Country: make(map[string]float32, len(e.Attrs.Country)),
			Gender:  make(map[string]float32, len(e.Attrs.Gender)),
			Rank:    make(map[string]int32, len(e.Attrs.Rank)),
		}
		for k, v := range e.Attrs.Country {
			rec.Country[k] = v
		}
		for k, v := range e.Attrs.Gender {
			rec.Gender[k] = v
		}
		for k, v := range e.Attrs.Rank {
			if v != nil {
				rec.Rank[k] = *v
			}
		}
		d.Records = append(d.Records, rec)
	}
	return d
}
