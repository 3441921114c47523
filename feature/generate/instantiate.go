package generate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"html-banner-generator/core/walk"
)

// MarkerFile is the artifact entry file. Its presence is the existence test
// for a banner artifact.
const MarkerFile = "index.html"

// SourceSuffix marks a dynamic template source. Rendering substitutes
// variables into every source file and writes the suffix-stripped name next
// to it; all other template files are copied byte-for-byte exactly once.
const SourceSuffix = ".src"

// Exists reports whether dir already holds a generated banner artifact.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, MarkerFile))
	return err == nil
}

// Instantiate materializes a banner's file tree from the template root.
// Anything inside an assets subdirectory is excluded so a template's own
// default assets never fight with campaign-specific ones. It is invoked
// exactly once per artifact lifetime; re-running generation over an existing
// artifact never re-copies the template, which is what protects hand-edited
// files from being clobbered.
func Instantiate(templateRoot, dest string) error {
	err := walk.CopyTree(templateRoot, dest, func(rel string, d fs.DirEntry) bool {
		return d.IsDir() && d.Name() == AssetsDirName
	})
	if err != nil {
		return fmt.Errorf("instantiate template %s into %s: %w", templateRoot, dest, err)
	}

	// Leave an empty assets directory so campaign files have a place to go.
	if err := os.MkdirAll(filepath.Join(dest, AssetsDirName), 0o755); err != nil {
		return fmt.Errorf("create assets directory in %s: %w", dest, err)
	}
	return nil
}
