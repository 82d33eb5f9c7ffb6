// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-silk-reader/models"
)

// Parse decodes plaintext into the generic document and its typed player
// record.
//
// Errors match models.ErrInvalidEncoding or models.ErrMalformedDocument.
// A document without a playerData object yields an all-default record.
func Parse(plaintext []byte) (models.SaveFile, error) {
	doc, err := ParseDocument(plaintext)
	if err != nil {
		return models.SaveFile{}, err
	}
	return models.SaveFile{
		Document: doc,
		Player:   Project(doc),
	}, nil
}

// ParseDocument validates plaintext as UTF-8 JSON and returns it as a
// [models.Document]. Numbers are kept as json.Number.
func ParseDocument(plaintext []byte) (models.Document, error) {
	if !utf8.Valid(plaintext) {
		return models.Document{}, fmt.Errorf("%w: plaintext is not valid UTF-8", models.ErrInvalidEncoding)
	}

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", models.ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.Document{}, fmt.Errorf("%w: unexpected data after top-level value", models.ErrMalformedDocument)
	}

	return models.NewDocument(root), nil
}

// Project builds the typed record from doc.playerData. It never fails.
func Project(doc models.Document) models.PlayerRecord {
	data := doc.PlayerData()

	var record models.PlayerRecord
	for _, bind := range playerFields {
		bind(data, &record)
	}
	record.Tools = readTools(data)
	return record
}
