package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex encoded BLAKE2b-256 digest of data. It
// identifies a save container byte for byte and is used to skip recording
// unchanged snapshots.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
