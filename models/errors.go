// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Decode pipeline errors. Every failure of the decrypt or parse step matches
// exactly one of these with [errors.Is]; the wrapped cause (if any) is kept in
// the error message. None of them is retryable: the input is a static file.
var (
	// ErrFileTooSmall is returned when the container is not longer than the
	// fixed header plus trailer, so no payload can exist.
	ErrFileTooSmall = errors.New("save file too small")

	// ErrInvalidEncoding is returned when the framed payload is not text,
	// is not valid base64, or when the decrypted plaintext is not UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrDecryptionFailed is returned when the ciphertext length is not
	// block-aligned or the PKCS#7 padding is invalid. It intentionally does
	// not say which of the two checks failed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMalformedDocument is returned when the plaintext is not valid JSON.
	ErrMalformedDocument = errors.New("malformed document")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrFileTooSmall, "FileTooSmall"},
	{ErrInvalidEncoding, "InvalidEncoding"},
	{ErrDecryptionFailed, "DecryptionFailed"},
	{ErrMalformedDocument, "MalformedDocument"},
}

// ErrorKind returns the short name of the decode error class err belongs to,
// or an empty string if err is not a decode pipeline error.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

// ErrorFromKind is the inverse of [ErrorKind]. It returns nil for an unknown
// kind.
func ErrorFromKind(kind string) error {
	for _, k := range errorKinds {
		if k.kind == kind {
			return k.err
		}
	}
	return nil
}
