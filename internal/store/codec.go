package store

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/MKhiriev/go-silk-reader/models"
)

// snapshotPayload is the content of the payload column: the typed record
// and the decrypted document, msgpack encoded and xz compressed.
type snapshotPayload struct {
	Player    models.PlayerRecord `msgpack:"player"`
	Plaintext []byte              `msgpack:"plaintext"`
}

func encodePayload(s models.Snapshot) ([]byte, error) {
	packed, err := msgpack.Marshal(snapshotPayload{Player: s.Player, Plaintext: s.Plaintext})
	if err != nil {
		return nil, fmt.Errorf("error packing snapshot payload: %w", err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("error creating xz writer: %w", err)
	}
	if _, err = w.Write(packed); err != nil {
		return nil, fmt.Errorf("error compressing snapshot payload: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("error compressing snapshot payload: %w", err)
	}

	return buf.Bytes(), nil
}

func decodePayload(data []byte, s *models.Snapshot) error {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	packed, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	var payload snapshotPayload
	if err = msgpack.Unmarshal(packed, &payload); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	s.Player = payload.Player
	s.Plaintext = payload.Plaintext
	return nil
}
