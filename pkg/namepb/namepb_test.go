// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namepb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pdiddy/namedata/pkg/types"
)

func sampleDataset(label string) types.NameDataset {
	return types.NameDataset{
		Label: label,
		Records: []types.NameRecord{
			{
				Name:    "Alice",
				Country: map[string]float32{"US": 0.9, "GB": 0.1},
				Gender:  map[string]float32{"F": 1.0},
				Rank:    map[string]int32{"US": 5},
			},
			{
				Name:    "Smith",
				Country: map[string]float32{"US": 0.5},
				Gender:  map[string]float32{},
				Rank:    map[string]int32{},
			},
		},
	}
}

func TestAvailable(t *testing.T) {
	require.NoError(t, Available())
}

func TestMarshalDatasetRoundTrip(t *testing.T) {
	want := sampleDataset(types.LabelFirst)

	data, err := MarshalDataset(want)
	require.NoError(t, err)

	got, err := UnmarshalDataset(data, types.LabelFirst)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestMarshalDatasetDeterministic(t *testing.T) {
	d := sampleDataset(types.LabelFirst)

	a, err := MarshalDataset(d)
	require.NoError(t, err)
	b, err := MarshalDataset(d)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical input must serialize to identical bytes")
}

func TestMarshalDatasetEmptyName(t *testing.T) {
	d := types.NameDataset{
		Label:   types.LabelFirst,
		Records: []types.NameRecord{{Name: ""}},
	}
	_, err := MarshalDataset(d)
	assert.Error(t, err)
}

func TestMarshalDatasetPreservesOrder(t *testing.T) {
	d := types.NameDataset{
		Label: types.LabelFirst,
		Records: []types.NameRecord{
			{Name: "Zoe", Country: map[string]float32{}, Gender: map[string]float32{}, Rank: map[string]int32{}},
			{Name: "Alice", Country: map[string]float32{}, Gender: map[string]float32{}, Rank: map[string]int32{}},
			{Name: "Maria", Country: map[string]float32{}, Gender: map[string]float32{}, Rank: map[string]int32{}},
		},
	}

	data, err := MarshalDataset(d)
	require.NoError(t, err)
	got, err := UnmarshalDataset(data, types.LabelFirst)
	require.NoError(t, err)

	names := make([]string, 0, len(got.Records))
	for _, r := range got.Records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Zoe", "Alice", "Maria"}, names)
}

func TestMarshalCombinedRoundTrip(t *testing.T) {
	want := types.CombinedDataset{
		First: sampleDataset(types.LabelFirst),
		Last:  sampleDataset(types.LabelLast),
	}

	data, err := MarshalCombined(want)
	require.NoError(t, err)

	got, err := UnmarshalCombined(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCombinedMatchesIndividualDatasets(t *testing.T) {
	first := sampleDataset(types.LabelFirst)
	last := sampleDataset(types.LabelLast)

	firstBytes, err := MarshalDataset(first)
	require.NoError(t, err)
	lastBytes, err := MarshalDataset(last)
	require.NoError(t, err)

	combinedBytes, err := MarshalCombined(types.CombinedDataset{First: first, Last: last})
	require.NoError(t, err)

	fromCombined, err := UnmarshalCombined(combinedBytes)
	require.NoError(t, err)

	fromFirst, err := UnmarshalDataset(firstBytes, types.LabelFirst)
	require.NoError(t, err)
	fromLast, err := UnmarshalDataset(lastBytes, types.LabelLast)
	require.NoError(t, err)

	assert.Equal(t, fromFirst, fromCombined.First)
	assert.Equal(t, fromLast, fromCombined.Last)
}

func TestUnmarshalEmptyMapsAreEmpty(t *testing.T) {
	d := types.NameDataset{
		Label: types.LabelLast,
		Records: []types.NameRecord{
			{Name: "Smith", Country: map[string]float32{"US": 0.5}, Gender: map[string]float32{}, Rank: map[string]int32{}},
		},
	}

	data, err := MarshalDataset(d)
	require.NoError(t, err)
	got, err := UnmarshalDataset(data, types.LabelLast)
	require.NoError(t, err)
	require.Len(t, got.Records, 1)

	rec := got.Records[0]
	assert.NotNil(t, rec.Gender)
	assert.Empty(t, rec.Gender)
	assert.NotNil(t, rec.Rank)
	assert.Empty(t, rec.Rank)
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	d := sampleDataset(types.LabelFirst)
	data, err := MarshalDataset(d)
	require.NoError(t, err)

	// A future writer may append fields this binary does not know about.
	data = protowire.AppendTag(data, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)

	got, err := UnmarshalDataset(data, types.LabelFirst)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestUnmarshalTruncated(t *testing.T) {
	data, err := MarshalDataset(sampleDataset(types.LabelFirst))
	require.NoError(t, err)

	_, err = UnmarshalDataset(data[:len(data)-3], types.LabelFirst)
	assert.Error(t, err)
}
