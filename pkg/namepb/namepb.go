// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namepb implements the cross-runtime binary schema for name
// datasets, as declared in names.proto.
//
// The bindings are hand-maintained wire encoders over
// google.golang.org/protobuf/encoding/protowire and must stay in sync with
// names.proto: the produced bytes are standard protobuf, decodable by any
// protobuf runtime that compiles the same schema.
package namepb

import (
	_ "embed"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// schemaSource is the schema these bindings implement, embedded so the
// binary can verify it was built with the schema it claims to speak.
//
//go:embed names.proto
var schemaSource string

// Field numbers from names.proto. A change here is a schema change and
// must be mirrored in the .proto file.
const (
	entryNameField    protowire.Number = 1
	entryCountryField protowire.Number = 2
	entryGenderField  protowire.Number = 3
	entryRankField    protowire.Number = 4

	datasetEntriesField protowire.Number = 1

	combinedFirstField protowire.Number = 1
	combinedLastField  protowire.Number = 2

	// Protobuf map entries are messages with key = 1, value = 2.
	mapKeyField   protowire.Number = 1
	mapValueField protowire.Number = 2
)

// schemaMessages are the messages the bindings implement.
var schemaMessages = []string{"NameEntry", "NameDataset", "CombinedNameDataset"}

// Available verifies the embedded schema source declares every message
// these bindings encode. It is checked by the exporter before any I/O so a
// binary built against a stale or stripped schema fails fast instead of
// writing artifacts no consumer can decode.
func Available() error {
	if strings.TrimSpace(schemaSource) == "" {
		return fmt.Errorf("embedded schema names.proto is empty")
	}
	for _, msg := range schemaMessages {
		if !strings.Contains(schemaSource, "message "+msg+" {") {
			return fmt.Errorf("embedded schema does not declare message %s", msg)
		}
	}
	return nil
}

// SchemaSource returns the .proto source these bindings implement.
func SchemaSource() string {
	return schemaSource
}
