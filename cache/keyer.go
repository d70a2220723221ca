package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Keyer derives deterministic cache keys from a calculation request.
//
// Contract:
// - Determinism: identical (type, inputs) must produce identical keys
//   regardless of map iteration order.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	Key(calcType string, inputs map[string]any) (string, error)
}

// DefaultKeyer hashes the canonical JSON form of the inputs.
// Format: calc:<type>:<hash>, where hash is the first 16 hex characters
// of SHA-256 over the key-sorted JSON encoding of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() *DefaultKeyer { return &DefaultKeyer{} }

// Key derives the cache key for one request.
func (k *DefaultKeyer) Key(calcType string, inputs map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, inputs); err != nil {
		return "", fmt.Errorf("cache: canonicalize inputs: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return "calc:" + calcType + ":" + hex.EncodeToString(sum[:8]), nil
}

// writeCanonical emits a deterministic JSON encoding of v: object keys
// are sorted recursively, everything else uses the standard encoding.
func writeCanonical(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encoded, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encoded)
			buf.WriteByte(':')
			if err := writeCanonical(buf, val[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	}
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
