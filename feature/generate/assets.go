package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AssetsDirName is the artifact subdirectory holding campaign-specific
// static files. Its contents are supplied by hand and never written by the
// generator.
const AssetsDirName = "assets"

// retinaSuffix marks a companion high-density variant of another asset
// (logo@2x.png next to logo.png). Companions are not listed independently.
const retinaSuffix = "@2x"

// Asset describes one static file within an artifact's assets directory.
type Asset struct {
	// ID is a stable identifier derived from the filename, extension stripped.
	ID string `json:"id"`

	// File is the plain filename within the assets directory.
	File string `json:"file"`
}

// ScanAssets enumerates the assets directory of an artifact, fresh on every
// run. The result is ordered by filename (directory scan order). A missing
// assets directory yields an empty list. Hidden files and retina companions
// are excluded.
func ScanAssets(artifactDir string) ([]Asset, error) {
	dir := filepath.Join(artifactDir, AssetsDirName)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan assets in %s: %w", dir, err)
	}

	var assets []Asset
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if strings.HasSuffix(stem, retinaSuffix) {
			continue
		}
		assets = append(assets, Asset{ID: stem, File: e.Name()})
	}
	return assets, nil
}

// assetFiles projects the filename sequence of an asset list. The sequence
// is compared element-by-element against the persisted state; order is
// meaningful since it comes from a sorted directory scan.
func assetFiles(assets []Asset) []string {
	files := make([]string, 0, len(assets))
	for _, a := range assets {
		files = append(files, a.File)
	}
	return files
}
