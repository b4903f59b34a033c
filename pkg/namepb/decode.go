// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namepb

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pdiddy/namedata/pkg/types"
)

// UnmarshalDataset decodes a NameDataset wire message. Unknown fields are
// skipped so newer writers remain readable. Entry order is preserved.
func UnmarshalDataset(data []byte, label string) (types.NameDataset, error) {
	d := types.NameDataset{Label: label}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return d, fmt.Errorf("dataset tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if num == datasetEntriesField && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return d, fmt.Errorf("dataset entry: %w", protowire.ParseError(n))
			}
			data = data[n:]

			rec, err := unmarshalEntry(v)
			if err != nil {
				return d, fmt.Errorf("entry %d: %w", len(d.Records), err)
			}
			d.Records = append(d.Records, rec)
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return d, fmt.Errorf("dataset field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return d, nil
}

// UnmarshalCombined decodes a CombinedNameDataset wire message.
func UnmarshalCombined(data []byte) (types.CombinedDataset, error) {
	c := types.CombinedDataset{
		First: types.NameDataset{Label: types.LabelFirst},
		Last:  types.NameDataset{Label: types.LabelLast},
	}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return c, fmt.Errorf("combined tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if typ == protowire.BytesType && (num == combinedFirstField || num == combinedLastField) {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return c, fmt.Errorf("combined dataset: %w", protowire.ParseError(n))
			}
			data = data[n:]

			switch num {
			case combinedFirstField:
				d, err := UnmarshalDataset(v, types.LabelFirst)
				if err != nil {
					return c, fmt.Errorf("first names: %w", err)
				}
				c.First = d
			case combinedLastField:
				d, err := UnmarshalDataset(v, types.LabelLast)
				if err != nil {
					return c, fmt.Errorf("last names: %w", err)
				}
				c.Last = d
			}
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return c, fmt.Errorf("combined field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return c, nil
}

func unmarshalEntry(data []byte) (types.NameRecord, error) {
	r := types.NameRecord{
		Country: map[string]float32{},
		Gender:  map[string]float32{},
		Rank:    map[string]int32{},
	}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return r, fmt.Errorf("entry tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == entryNameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return r, fmt.Errorf("name: %w", protowire.ParseError(n))
			}
			data = data[n:]
			r.Name = v

		case num == entryCountryField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return r, fmt.Errorf("country: %w", protowire.ParseError(n))
			}
			data = data[n:]
			key, val, err := consumeFloatPair(v)
			if err != nil {
				return r, fmt.Errorf("country: %w", err)
			}
			r.Country[key] = val

		case num == entryGenderField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return r, fmt.Errorf("gender: %w", protowire.ParseError(n))
			}
			data = data[n:]
			key, val, err := consumeFloatPair(v)
			if err != nil {
				return r, fmt.Errorf("gender: %w", err)
			}
			r.Gender[key] = val

		case num == entryRankField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return r, fmt.Errorf("rank: %w", protowire.ParseError(n))
			}
			data = data[n:]
			key, val, err := consumeRankPair(v)
			if err != nil {
				return r, fmt.Errorf("rank: %w", err)
			}
			r.Rank[key] = val

		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return r, fmt.Errorf("entry field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return r, nil
}

func consumeFloatPair(data []byte) (string, float32, error) {
	var key string
	var val float32
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", 0, fmt.Errorf("map tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == mapKeyField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", 0, fmt.Errorf("map key: %w", protowire.ParseError(n))
			}
			data = data[n:]
			key = v
		case num == mapValueField && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return "", 0, fmt.Errorf("map value: %w", protowire.ParseError(n))
			}
			data = data[n:]
			val = math.Float32frombits(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", 0, fmt.Errorf("map field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return key, val, nil
}

func consumeRankPair(data []byte) (string, int32, error) {
	var key string
	var val int32
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", 0, fmt.Errorf("map tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == mapKeyField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", 0, fmt.Errorf("map key: %w", protowire.ParseError(n))
			}
			data = data[n:]
			key = v
		case num == mapValueField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return "", 0, fmt.Errorf("map value: %w", protowire.ParseError(n))
			}
			data = data[n:]
			val = int32(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", 0, fmt.Errorf("map field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return key, val, nil
}
