package bundle

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArchiveName covers the naming and sanitization rules.
func TestArchiveName(t *testing.T) {
	tests := []struct {
		name     string
		campaign string
		language string
		motive   string
		width    int
		height   int
		want     string
	}{
		{
			name:     "full tuple",
			campaign: "summer", language: "en", motive: "beach",
			width: 300, height: 250,
			want: "summer_en_beach_300x250.zip",
		},
		{
			name:     "no language or motive",
			campaign: "summer",
			width:    728, height: 90,
			want: "summer_728x90.zip",
		},
		{
			name:     "whitespace collapsed",
			campaign: "summer  sale", language: "en",
			width: 300, height: 250,
			want: "summer_sale_en_300x250.zip",
		},
		{
			name:     "unsafe characters replaced",
			campaign: "sale!2026", motive: "städte",
			width: 160, height: 600,
			want: "sale_2026_st_dte_160x600.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArchiveName(tt.campaign, tt.language, tt.motive, tt.width, tt.height)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestPackage verifies that only deployable output lands in the archive.
func TestPackage(t *testing.T) {
	src := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(src, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("index.html", "<html>")
	write("assets/logo.png", "png-bytes")
	write("index.html.src", "{{.Campaign}}")
	write(".generation-state.json", "{}")
	write(".DS_Store", "junk")
	write("assets/Thumbs.db", "junk")

	dest := filepath.Join(t.TempDir(), "out.zip")
	size, err := Package(src, dest, "*.src", ".generation-state.json")
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))

	r, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"assets/logo.png", "index.html"}, names)
}

// TestPackage_ReportedSizeMatchesDisk ties the returned size to the file the
// size guard will stat.
func TestPackage_ReportedSizeMatchesDisk(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html>"), 0o644))

	dest := filepath.Join(t.TempDir(), "out.zip")
	size, err := Package(src, dest)
	require.NoError(t, err)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), size)
}
