// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namepb

import (
	"fmt"
	"math"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pdiddy/namedata/pkg/types"
)

// MarshalDataset encodes a NameDataset into its wire form. Record order is
// preserved; map sub-fields are emitted in sorted key order so identical
// input always produces identical bytes. It returns an error if a record
// violates the non-empty name invariant.
func MarshalDataset(d types.NameDataset) ([]byte, error) {
	var b []byte
	for i, r := range d.Records {
		if r.Name == "" {
			return nil, fmt.Errorf("entry %d: empty name", i)
		}
		b = protowire.AppendTag(b, datasetEntriesField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendEntry(nil, r))
	}
	return b, nil
}

// MarshalCombined encodes a CombinedDataset. Both dataset fields are always
// present in the output, even when empty, so consumers can distinguish the
// two categories without guessing.
func MarshalCombined(c types.CombinedDataset) ([]byte, error) {
	first, err := MarshalDataset(c.First)
	if err != nil {
		return nil, fmt.Errorf("first names: %w", err)
	}
	last, err := MarshalDataset(c.Last)
	if err != nil {
		return nil, fmt.Errorf("last names: %w", err)
	}

	var b []byte
	b = protowire.AppendTag(b, combinedFirstField, protowire.BytesType)
	b = protowire.AppendBytes(b, first)
	b = protowire.AppendTag(b, combinedLastField, protowire.BytesType)
	b = protowire.AppendBytes(b, last)
	return b, nil
}

func appendEntry(b []byte, r types.NameRecord) []byte {
	b = protowire.AppendTag(b, entryNameField, protowire.BytesType)
	b = protowire.AppendString(b, r.Name)

	for _, k := range sortedKeys(r.Country) {
		b = protowire.AppendTag(b, entryCountryField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendFloatPair(nil, k, r.Country[k]))
	}
	for _, k := range sortedKeys(r.Gender) {
		b = protowire.AppendTag(b, entryGenderField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendFloatPair(nil, k, r.Gender[k]))
	}
	for _, k := range sortedRankKeys(r.Rank) {
		b = protowire.AppendTag(b, entryRankField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendRankPair(nil, k, r.Rank[k]))
	}
	return b
}

func appendFloatPair(b []byte, key string, val float32) []byte {
	b = protowire.AppendTag(b, mapKeyField, protowire.BytesType)
	b = protowire.AppendString(b, key)
	b = protowire.AppendTag(b, mapValueField, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(val))
	return b
}

func appendRankPair(b []byte, key string, val int32) []byte {
	b = protowire.AppendTag(b, mapKeyField, protowire.BytesType)
	b = protowire.AppendString(b, key)
	b = protowire.AppendTag(b, mapValueField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(int64(val)))
	return b
}

func sortedKeys(m map[string]float32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedRankKeys(m map[string]int32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
