package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanAssets enumerates asset files with derived identifiers, skipping
// retina companions, hidden files and subdirectories.
func TestScanAssets(t *testing.T) {
	dir := t.TempDir()
	assetsDir := filepath.Join(dir, AssetsDirName)
	require.NoError(t, os.MkdirAll(filepath.Join(assetsDir, "nested"), 0o755))
	for _, name := range []string{"logo.png", "logo@2x.png", "bg.jpg", ".DS_Store"} {
		require.NoError(t, os.WriteFile(filepath.Join(assetsDir, name), []byte("x"), 0o644))
	}

	assets, err := ScanAssets(dir)
	require.NoError(t, err)

	assert.Equal(t, []Asset{
		{ID: "bg", File: "bg.jpg"},
		{ID: "logo", File: "logo.png"},
	}, assets)
}

// TestScanAssets_MissingDir yields an empty list for artifacts without an
// assets directory.
func TestScanAssets_MissingDir(t *testing.T) {
	assets, err := ScanAssets(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, assets)
}
