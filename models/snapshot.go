// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is one recorded state of a watched save file.
//
// Player and Plaintext (the decrypted JSON of the container) are only
// populated by single-snapshot reads; listings leave them empty.
type Snapshot struct {
	ID          string       `json:"id"`
	Source      string       `json:"source"`
	Fingerprint string       `json:"fingerprint"`
	PlayTime    string       `json:"play_time"`
	Completion  float64      `json:"completion"`
	Player      PlayerRecord `json:"player,omitzero"`
	Plaintext   []byte       `json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
}

// SnapshotDetail is a snapshot returned together with its full document.
type SnapshotDetail struct {
	Snapshot
	Document Document `json:"document"`
}
