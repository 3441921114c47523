package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Canonical serializes a value into a canonical JSON form.
// Mapping keys are sorted recursively, sequence order is preserved and
// scalars are left unchanged, so two values with identical semantic content
// always serialize identically regardless of key insertion order.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize value: %w", err)
	}

	// Round-trip through the generic representation. Re-marshalling a
	// map[string]any emits its keys in sorted order at every nesting level.
	var norm any
	if err := json.Unmarshal(raw, &norm); err != nil {
		return nil, fmt.Errorf("normalize value: %w", err)
	}

	canon, err := json.Marshal(norm)
	if err != nil {
		return nil, fmt.Errorf("canonicalize value: %w", err)
	}
	return canon, nil
}

// Fingerprint computes a deterministic content signature of a value.
// It is the hex-encoded SHA-256 of the canonical serialization, so values
// that differ only in mapping key order fingerprint identically.
func Fingerprint(v any) (string, error) {
	canon, err := Canonical(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}
