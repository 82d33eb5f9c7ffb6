// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-silk-reader/models"
)

const (
	// HeaderSize is the number of leading container bytes that precede the
	// base64 payload.
	HeaderSize = 25
	// TrailerSize is the number of bytes after the payload.
	TrailerSize = 1

	// saveKey is the AES-256 key shared by every save file.
	saveKey = "UKu52ePUBwetZ9wNX88o54dnfKRu0T1l"
)

// saveCipher is the private implementation of [Cipher].
type saveCipher struct {
	block cipher.Block
}

// NewSaveCipher constructs a [Cipher] bound to the save-file key.
func NewSaveCipher() Cipher {
	block, err := aes.NewCipher([]byte(saveKey))
	if err != nil {
		// the key is a 32-byte constant, aes.NewCipher cannot reject it
		panic(fmt.Sprintf("crypto: init save cipher: %v", err))
	}
	return &saveCipher{block: block}
}

// Decrypt implements [Cipher].
func (c *saveCipher) Decrypt(raw []byte) ([]byte, error) {
	if len(raw) <= HeaderSize+TrailerSize {
		return nil, fmt.Errorf("%w: %d bytes", models.ErrFileTooSmall, len(raw))
	}

	framed := raw[HeaderSize : len(raw)-TrailerSize]
	if !utf8.Valid(framed) {
		return nil, fmt.Errorf("%w: payload is not text", models.ErrInvalidEncoding)
	}

	// encoding/base64 skips CR and LF, the format does not allow them
	if bytes.ContainsAny(framed, "\r\n") {
		return nil, fmt.Errorf("%w: line break in base64 payload", models.ErrInvalidEncoding)
	}

	ciphertext := make([]byte, base64.StdEncoding.DecodedLen(len(framed)))
	n, err := base64.StdEncoding.Decode(ciphertext, framed)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", models.ErrInvalidEncoding, err)
	}
	ciphertext = ciphertext[:n]

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, models.ErrDecryptionFailed
	}

	// decrypt in place, ciphertext is our own buffer
	for off := 0; off < len(ciphertext); off += aes.BlockSize {
		c.block.Decrypt(ciphertext[off:off+aes.BlockSize], ciphertext[off:off+aes.BlockSize])
	}

	plaintext, ok := pkcs7Unpad(ciphertext, aes.BlockSize)
	if !ok {
		return nil, models.ErrDecryptionFailed
	}
	return plaintext, nil
}

// Encrypt implements [Cipher].
func (c *saveCipher) Encrypt(plaintext []byte) []byte {
	buf := pkcs7Pad(plaintext, aes.BlockSize)
	for off := 0; off < len(buf); off += aes.BlockSize {
		c.block.Encrypt(buf[off:off+aes.BlockSize], buf[off:off+aes.BlockSize])
	}

	payloadLen := base64.StdEncoding.EncodedLen(len(buf))
	out := make([]byte, 0, HeaderSize+payloadLen+TrailerSize)
	out = appendHeader(out, payloadLen)
	out = base64.StdEncoding.AppendEncode(out, buf)
	return append(out, containerTrailer)
}
