package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToInt covers the loose-typed conversions campaign JSON produces.
func TestToInt(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "json number", input: float64(300), want: 300},
		{name: "int", input: 250, want: 250},
		{name: "quoted number", input: "728", want: 728},
		{name: "bytes", input: []byte("90"), want: 90},
		{name: "non-numeric string", input: "wide", want: 0},
		{name: "nil", input: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.input))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "en", ToString("en"))
	assert.Equal(t, "en", ToString([]byte("en")))
	assert.Equal(t, "300", ToString(float64(300)))
	assert.Equal(t, "", ToString(nil))
}
