package crypto

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-silk-reader/models"
)

// frame wraps payload text with a zero header and trailer of the container
// sizes.
func frame(payload string) []byte {
	raw := make([]byte, 0, HeaderSize+len(payload)+TrailerSize)
	raw = append(raw, make([]byte, HeaderSize)...)
	raw = append(raw, payload...)
	return append(raw, 0)
}

// encryptBlocks ECB-encrypts already aligned data with the save key and
// returns the framed container.
func encryptBlocks(t *testing.T, data []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher([]byte(saveKey))
	require.NoError(t, err)
	require.Zero(t, len(data)%aes.BlockSize)

	out := make([]byte, len(data))
	for off := 0; off < len(data); off += aes.BlockSize {
		block.Encrypt(out[off:off+aes.BlockSize], data[off:off+aes.BlockSize])
	}
	return frame(base64.StdEncoding.EncodeToString(out))
}

// ── Decrypt: framing ──

func TestDecrypt_FileTooSmall(t *testing.T) {
	c := NewSaveCipher()

	for _, n := range []int{0, 1, 10, 25, 26} {
		_, err := c.Decrypt(make([]byte, n))
		assert.ErrorIs(t, err, models.ErrFileTooSmall, "len=%d", n)
	}
}

func TestDecrypt_InvalidBase64(t *testing.T) {
	c := NewSaveCipher()

	raw := frame("!!!!")
	require.Len(t, raw, 30)
	_, err := c.Decrypt(raw)
	assert.ErrorIs(t, err, models.ErrInvalidEncoding)

	_, err = c.Decrypt(frame("!!!invalid!!!"))
	assert.ErrorIs(t, err, models.ErrInvalidEncoding)
}

func TestDecrypt_PayloadNotText(t *testing.T) {
	c := NewSaveCipher()

	raw := frame("AAAA")
	raw[HeaderSize+1] = 0xFF
	_, err := c.Decrypt(raw)
	assert.ErrorIs(t, err, models.ErrInvalidEncoding)
}

func TestDecrypt_HeaderAndTrailerIgnored(t *testing.T) {
	c := NewSaveCipher()
	plain := []byte(`{"playerData":{}}`)

	raw := c.Encrypt(plain)
	for i := range HeaderSize {
		raw[i] = 0xEE
	}
	raw[len(raw)-1] = 0xEE

	got, err := c.Decrypt(raw)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

// ── Decrypt: block and padding checks ──

func TestDecrypt_NotBlockAligned(t *testing.T) {
	c := NewSaveCipher()

	// 15 bytes of ciphertext
	raw := frame(base64.StdEncoding.EncodeToString(make([]byte, 15)))
	_, err := c.Decrypt(raw)
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)

	// empty payload decodes to zero bytes
	_, err = c.Decrypt(frame("="))
	assert.Error(t, err)
}

func TestDecrypt_LoneNewline(t *testing.T) {
	c := NewSaveCipher()

	raw := append(make([]byte, HeaderSize+1), 0)
	raw[HeaderSize] = '\n'
	_, err := c.Decrypt(raw)
	assert.ErrorIs(t, err, models.ErrInvalidEncoding)
}

func TestDecrypt_LineBreaksInPayload(t *testing.T) {
	c := NewSaveCipher()
	valid := c.Encrypt([]byte(`{"playerData":{"geo":5}}`))
	payload := string(valid[HeaderSize : len(valid)-TrailerSize])

	for _, sep := range []string{"\r\n", "\n", "\r"} {
		split := payload[:8] + sep + payload[8:]
		_, err := c.Decrypt(frame(split))
		assert.ErrorIs(t, err, models.ErrInvalidEncoding, "separator %q", sep)
	}

	_, err := c.Decrypt(frame("AAAA\r\nAAAA"))
	assert.ErrorIs(t, err, models.ErrInvalidEncoding)
}

func TestDecrypt_BadPadding(t *testing.T) {
	c := NewSaveCipher()

	tests := []struct {
		name string
		last []byte
	}{
		{name: "zero pad length", last: []byte{0x00}},
		{name: "pad longer than block", last: []byte{0x11}},
		{name: "inconsistent pad bytes", last: []byte{0x01, 0x03, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{'a'}, aes.BlockSize*2)
			copy(data[len(data)-len(tt.last):], tt.last)

			_, err := c.Decrypt(encryptBlocks(t, data))
			assert.ErrorIs(t, err, models.ErrDecryptionFailed)
			assert.Equal(t, models.ErrDecryptionFailed.Error(), err.Error())
		})
	}
}

func TestDecrypt_FullPaddingBlock(t *testing.T) {
	c := NewSaveCipher()

	data := append(bytes.Repeat([]byte{'x'}, aes.BlockSize), bytes.Repeat([]byte{aes.BlockSize}, aes.BlockSize)...)
	got, err := c.Decrypt(encryptBlocks(t, data))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{'x'}, aes.BlockSize), got)
}

func TestDecrypt_DoesNotMutateInput(t *testing.T) {
	c := NewSaveCipher()
	raw := c.Encrypt([]byte(`{"playerData":{"geo":5}}`))
	orig := bytes.Clone(raw)

	first, err := c.Decrypt(raw)
	require.NoError(t, err)
	second, err := c.Decrypt(raw)
	require.NoError(t, err)

	assert.Equal(t, orig, raw)
	assert.Equal(t, first, second)
}

// ── Encrypt ──

func TestEncrypt_RoundTrip(t *testing.T) {
	c := NewSaveCipher()

	inputs := [][]byte{
		{},
		[]byte("x"),
		bytes.Repeat([]byte("0123456789abcdef"), 4),
		[]byte(`{"playerData":{"version":"1.0.28324","playTime":7325.5}}`),
		bytes.Repeat([]byte("silk"), 10000),
	}
	for _, in := range inputs {
		got, err := c.Decrypt(c.Encrypt(in))
		require.NoError(t, err)
		assert.Equal(t, len(in), len(got))
		assert.True(t, bytes.Equal(in, got))
	}
}

func TestEncrypt_Framing(t *testing.T) {
	c := NewSaveCipher()

	raw := c.Encrypt(bytes.Repeat([]byte("a"), 100))
	assert.Equal(t, binaryFormatterPreamble[:], raw[:len(binaryFormatterPreamble)])
	assert.Equal(t, containerTrailer, raw[len(raw)-1])

	payloadLen := len(raw) - HeaderSize - TrailerSize
	prefix := raw[len(binaryFormatterPreamble):HeaderSize]
	decoded := int(prefix[0]&0x7F) | int(prefix[1]&0x7F)<<7 | int(prefix[2]&0x7F)<<14
	assert.Equal(t, payloadLen, decoded)
	assert.NotZero(t, prefix[0]&0x80)
	assert.NotZero(t, prefix[1]&0x80)
	assert.Zero(t, prefix[2]&0x80)
}

func TestAppendHeader_Saturates(t *testing.T) {
	h := appendHeader(nil, maxPrefixedLength+10)
	require.Len(t, h, HeaderSize)
	assert.Equal(t, []byte{0xFF, 0xFF, 0x7F}, h[len(binaryFormatterPreamble):])
}

// ── PKCS#7 ──

func TestPKCS7_PadUnpad(t *testing.T) {
	for n := range 40 {
		data := bytes.Repeat([]byte{0x42}, n)
		padded := pkcs7Pad(data, aes.BlockSize)
		assert.Zero(t, len(padded)%aes.BlockSize)
		assert.Greater(t, len(padded), n)

		got, ok := pkcs7Unpad(padded, aes.BlockSize)
		require.True(t, ok)
		assert.Equal(t, data, got)
	}

	_, ok := pkcs7Unpad(nil, aes.BlockSize)
	assert.False(t, ok)
	_, ok = pkcs7Unpad([]byte{0x02}, aes.BlockSize)
	assert.False(t, ok)
}
