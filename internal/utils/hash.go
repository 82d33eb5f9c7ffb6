package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the request
// signing key. Must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool configures the pool for the given signing key. Calling it
// again replaces the key for all subsequent Hash calls.
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash signs data with the pooled HMAC-SHA256 hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString signs data with a fresh HMAC instance and returns the hex digest.
// The remote client uses it to set the HashSHA256 header on uploaded saves.
func HashString(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyHash reports whether hexDigest is the pooled signature of data. The
// comparison runs in constant time.
func VerifyHash(data []byte, hexDigest string) bool {
	want, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), want)
}
