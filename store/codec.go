package store

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/blake3"
)

// Records are msgpack-encoded. Payloads at or above compressThreshold
// are zstd-compressed; a one-byte tag distinguishes the two framings so
// old raw records stay readable if the threshold changes.
const (
	tagRaw  = 0x00
	tagZstd = 0x01

	compressThreshold = 8 * 1024 // < 8KB stored raw
)

// NewID generates a fresh opaque document ID: the BLAKE3 digest of a
// random UUID, hex encoded.
func NewID() string {
	sum := blake3.Sum256([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])
}

// encode serializes a record for storage.
func (s *Store) encode(v interface{}) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	if len(data) < compressThreshold {
		return append([]byte{tagRaw}, data...), nil
	}
	return s.enc.EncodeAll(data, []byte{tagZstd}), nil
}

// decode deserializes a stored record.
func (s *Store) decode(data []byte, v interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("failed to decode record: empty payload")
	}
	payload := data[1:]
	if data[0] == tagZstd {
		var err error
		payload, err = s.dec.DecodeAll(payload, nil)
		if err != nil {
			return fmt.Errorf("failed to decompress record: %w", err)
		}
	}
	if err := msgpack.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}
