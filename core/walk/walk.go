package walk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Decision controls traversal after visiting an entry.
type Decision int

const (
	// Continue proceeds with the traversal.
	Continue Decision = iota
	// SkipDir does not descend into the visited directory.
	SkipDir
	// Stop aborts the whole traversal without error.
	Stop
)

// errStop is a sentinel used internally to unwind a Stop decision.
var errStop = errors.New("walk stopped")

// VisitFunc is invoked for every entry below the walked root.
// path is the absolute entry path, rel is the path relative to the root
// using forward slashes.
type VisitFunc func(path, rel string, d fs.DirEntry) (Decision, error)

// Walk traverses the tree rooted at root in lexical order and invokes fn for
// every entry except the root itself. The per-entry decision determines
// whether traversal continues, skips a subtree, or stops entirely.
func Walk(root string, fn VisitFunc) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		decision, err := fn(path, rel, d)
		if err != nil {
			return err
		}
		switch decision {
		case SkipDir:
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		case Stop:
			return errStop
		default:
			return nil
		}
	})
	if errors.Is(err, errStop) {
		return nil
	}
	return err
}

// CopyTree copies the tree rooted at src into dst, creating directories as
// needed. Entries for which skip returns true are not copied; a skipped
// directory is not descended into. Regular files are copied byte-for-byte,
// preserving their permission bits.
func CopyTree(src, dst string, skip func(rel string, d fs.DirEntry) bool) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create destination %s: %w", dst, err)
	}

	return Walk(src, func(path, rel string, d fs.DirEntry) (Decision, error) {
		if skip != nil && skip(rel, d) {
			return SkipDir, nil
		}

		target := filepath.Join(dst, filepath.FromSlash(rel))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return Stop, fmt.Errorf("create directory %s: %w", target, err)
			}
			return Continue, nil
		}

		if err := copyFile(path, target, d); err != nil {
			return Stop, err
		}
		return Continue, nil
	})
}

func copyFile(src, dst string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
