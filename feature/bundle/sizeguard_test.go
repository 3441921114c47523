package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseBudget covers the <number>kb budget format.
func TestParseBudget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "lowercase", input: "150kb", want: 153600},
		{name: "uppercase", input: "40KB", want: 40960},
		{name: "mixed case with spaces", input: " 1 Kb ", want: 1024},
		{name: "undeclared", input: "", want: 0},
		{name: "missing unit", input: "150", wantErr: true},
		{name: "wrong unit", input: "1mb", wantErr: true},
		{name: "not a number", input: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBudget(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCheck verifies pass/fail/skip against an archive of known size.
func TestCheck(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "banner.zip")
	require.NoError(t, os.WriteFile(archive, make([]byte, 2048), 0o644))

	tests := []struct {
		name   string
		budget int64
		want   Status
	}{
		{name: "under budget", budget: 4096, want: StatusOK},
		{name: "exactly at budget", budget: 2048, want: StatusOK},
		{name: "over budget", budget: 1024, want: StatusOversize},
		{name: "no budget declared", budget: 0, want: StatusSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Check(archive, tt.budget)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Status)
			assert.Equal(t, int64(2048), result.ActualBytes)
		})
	}
}

// TestCheck_SkippedIsNotOK makes the distinction explicit: absence of a
// budget is never conflated with passing one.
func TestCheck_SkippedIsNotOK(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "banner.zip")
	require.NoError(t, os.WriteFile(archive, []byte("zip"), 0o644))

	result, err := Check(archive, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, result.Status)
	assert.NotEqual(t, StatusOK, result.Status)
	assert.Zero(t, result.BudgetBytes)
}

// TestCheck_MissingArchive surfaces the stat error.
func TestCheck_MissingArchive(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "nope.zip"), 1024)
	assert.Error(t, err)
}
