package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// LoadJSON decodes the blob at key into dest. A missing key reports
// found=false with no error; undecodable content is returned as an error so
// callers can fall back to an empty value.
func LoadJSON(b Blobs, key string, dest any) (found bool, err error) {
	data, err := b.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes value and writes it to key.
func SaveJSON(b Blobs, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return b.Put(key, data)
}
