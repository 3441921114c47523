package fingerprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFingerprint_KeyOrderIndependence verifies that documents with the same
// semantic content but different key order fingerprint identically.
func TestFingerprint_KeyOrderIndependence(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{
			name: "flat object",
			a:    `{"width":300,"height":250,"language":"en"}`,
			b:    `{"language":"en","height":250,"width":300}`,
		},
		{
			name: "nested object",
			a:    `{"width":300,"brand":{"type":"premium","tier":1}}`,
			b:    `{"brand":{"tier":1,"type":"premium"},"width":300}`,
		},
		{
			name: "array order preserved",
			a:    `{"sizes":["a","b"],"x":1}`,
			b:    `{"x":1,"sizes":["a","b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var va, vb any
			require.NoError(t, json.Unmarshal([]byte(tt.a), &va))
			require.NoError(t, json.Unmarshal([]byte(tt.b), &vb))

			fa, err := Fingerprint(va)
			require.NoError(t, err)
			fb, err := Fingerprint(vb)
			require.NoError(t, err)

			assert.Equal(t, fa, fb)
		})
	}
}

// TestFingerprint_DetectsChange verifies that semantic differences change
// the fingerprint.
func TestFingerprint_DetectsChange(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{
			name: "changed value",
			a:    `{"width":300,"height":250}`,
			b:    `{"width":300,"height":600}`,
		},
		{
			name: "added key",
			a:    `{"width":300}`,
			b:    `{"width":300,"motive":"summer"}`,
		},
		{
			name: "reordered array",
			a:    `{"sizes":["a","b"]}`,
			b:    `{"sizes":["b","a"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var va, vb any
			require.NoError(t, json.Unmarshal([]byte(tt.a), &va))
			require.NoError(t, json.Unmarshal([]byte(tt.b), &vb))

			fa, err := Fingerprint(va)
			require.NoError(t, err)
			fb, err := Fingerprint(vb)
			require.NoError(t, err)

			assert.NotEqual(t, fa, fb)
		})
	}
}

// TestFingerprint_StructAndMapAgree verifies that a struct and the generic
// map it unmarshals to share one fingerprint.
func TestFingerprint_StructAndMapAgree(t *testing.T) {
	type spec struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Lang   string `json:"lang"`
	}
	s := spec{Width: 300, Height: 250, Lang: "en"}

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	fs, err := Fingerprint(s)
	require.NoError(t, err)
	fm, err := Fingerprint(m)
	require.NoError(t, err)

	assert.Equal(t, fs, fm)
}

// TestCanonical_SortsKeys verifies the canonical serialization itself.
func TestCanonical_SortsKeys(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"b":1,"a":{"d":2,"c":3}}`), &v))

	canon, err := Canonical(v)
	require.NoError(t, err)

	assert.Equal(t, `{"a":{"c":3,"d":2},"b":1}`, string(canon))
}
