package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("save"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, Fingerprint([]byte("save")))
	assert.NotEqual(t, a, Fingerprint([]byte("save2")))

	// BLAKE2b-256 of the empty input.
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", Fingerprint(nil))
}
