package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"html-banner-generator/core/walk"

	"github.com/klauspost/compress/flate"
)

// osMetadata are filesystem droppings that never belong in a deployable zip.
var osMetadata = map[string]struct{}{
	".DS_Store": {},
	"Thumbs.db": {},
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^\w.-]`)
)

// ArchiveName builds the zip file name for a banner variant:
// <campaign>_<language?>_<motive?>_<WxH>.zip, with whitespace collapsed to
// underscores and anything outside word characters, dot and hyphen replaced
// by an underscore.
func ArchiveName(campaignName, language, motive string, width, height int) string {
	parts := []string{campaignName}
	if language != "" {
		parts = append(parts, language)
	}
	if motive != "" {
		parts = append(parts, motive)
	}
	parts = append(parts, fmt.Sprintf("%dx%d", width, height))

	name := strings.Join(parts, "_")
	name = whitespaceRe.ReplaceAllString(name, "_")
	name = unsafeRe.ReplaceAllString(name, "_")
	return name + ".zip"
}

// Package writes a zip archive of sourceDir's current contents to destPath
// and returns the archive size in bytes. Only rendered, deployable output is
// packaged: OS metadata is always excluded, and callers pass additional
// exclude patterns (matched against the entry base name with filepath.Match)
// for pre-substitution sources and internal state records.
//
// Entries are compressed with flate at best compression.
func Package(sourceDir, destPath string, excludePatterns ...string) (int64, error) {
	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("create archive %s: %w", destPath, err)
	}

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	err = walk.Walk(sourceDir, func(path, rel string, d fs.DirEntry) (walk.Decision, error) {
		if d.IsDir() {
			return walk.Continue, nil
		}
		if excluded(filepath.Base(path), excludePatterns) {
			return walk.Continue, nil
		}
		if err := addEntry(zw, path, rel); err != nil {
			return walk.Stop, err
		}
		return walk.Continue, nil
	})
	if err != nil {
		zw.Close()
		out.Close()
		return 0, err
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return 0, fmt.Errorf("finalize archive %s: %w", destPath, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close archive %s: %w", destPath, err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return 0, fmt.Errorf("stat archive %s: %w", destPath, err)
	}
	return info.Size(), nil
}

func excluded(base string, patterns []string) bool {
	if _, ok := osMetadata[base]; ok {
		return true
	}
	for _, p := range patterns {
		if match, _ := filepath.Match(p, base); match {
			return true
		}
	}
	return false
}

func addEntry(zw *zip.Writer, path, rel string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	w, err := zw.Create(rel)
	if err != nil {
		return fmt.Errorf("add archive entry %s: %w", rel, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("write archive entry %s: %w", rel, err)
	}
	return nil
}
