// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
)

// PlayerDataKey is the root key holding the player-state object.
const PlayerDataKey = "playerData"

// Document is the complete decrypted save as a generic JSON tree.
//
// Objects are map[string]any, arrays []any and numbers json.Number, so the
// tree re-encodes to the same values it was decoded from. A Document is never
// modified after construction; callers must not mutate the values returned by
// Root or Lookup.
type Document struct {
	root any
}

// NewDocument wraps an already decoded JSON value.
func NewDocument(root any) Document {
	return Document{root: root}
}

// Root returns the top-level JSON value.
func (d Document) Root() any {
	return d.root
}

// Lookup walks nested objects by key and returns the value found at the end
// of path. The second result is false if any step is missing or is not an
// object.
func (d Document) Lookup(path ...string) (any, bool) {
	cur := d.root
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// PlayerData returns the playerData object, or an empty object when the key
// is absent or holds something other than an object.
func (d Document) PlayerData() map[string]any {
	v, ok := d.Lookup(PlayerDataKey)
	if !ok {
		return map[string]any{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return obj
}

// MarshalJSON encodes the underlying tree.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.root)
}

// MarshalIndent returns the document as pretty-printed JSON with two-space
// indentation. Object keys come out sorted, not in save-file order.
func (d Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d.root, "", "  ")
}
