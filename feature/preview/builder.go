package preview

import (
	"fmt"
	"html"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"html-banner-generator/core/walk"
	"html-banner-generator/feature/generate"
)

// FileName is the aggregate preview page written at the output root.
const FileName = "preview.html"

// Entry is one discovered banner artifact below the output root.
type Entry struct {
	// Rel is the artifact directory relative to the output root, using
	// forward slashes.
	Rel string

	// Width and Height are parsed from the trailing "WxH" path segment;
	// zero when the segment does not follow the convention.
	Width  int
	Height int
}

var dimensionsRe = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Discover scans the output root for generated banners. Traversal stops
// descending at the first directory containing an entry marker file, so an
// artifact's own subdirectories are never mistaken for artifacts.
func Discover(outputRoot string) ([]Entry, error) {
	var entries []Entry
	err := walk.Walk(outputRoot, func(p, rel string, d fs.DirEntry) (walk.Decision, error) {
		if !d.IsDir() {
			return walk.Continue, nil
		}
		if !generate.Exists(p) {
			return walk.Continue, nil
		}

		e := Entry{Rel: rel}
		if m := dimensionsRe.FindStringSubmatch(path.Base(rel)); m != nil {
			e.Width, _ = strconv.Atoi(m[1])
			e.Height, _ = strconv.Atoi(m[2])
		}
		entries = append(entries, e)
		return walk.SkipDir, nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover artifacts in %s: %w", outputRoot, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Rel < entries[j].Rel })
	return entries, nil
}

// Build writes the aggregate preview page at the output root and returns its
// path. The page embeds a live view of every discovered banner and a
// client-side text filter; building it is pure string formatting over the
// discovery result.
func Build(outputRoot string) (string, error) {
	entries, err := Discover(outputRoot)
	if err != nil {
		return "", err
	}

	page := renderPage(entries)
	dest := filepath.Join(outputRoot, FileName)
	if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("write preview page %s: %w", dest, err)
	}
	return dest, nil
}

func renderPage(entries []Entry) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Banner Preview</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #f4f4f4; }
.banner { display: inline-block; vertical-align: top; margin: 0 1.5em 1.5em 0; }
.banner h2 { font-size: 0.85em; font-weight: normal; margin: 0 0 0.4em; color: #444; }
.banner iframe { border: 1px solid #ccc; background: #fff; }
#filter { padding: 0.4em; width: 20em; margin-bottom: 1.5em; }
</style>
</head>
<body>
<h1>Banner Preview</h1>
<input id="filter" type="text" placeholder="Filter banners...">
<div id="banners">
`)

	for _, e := range entries {
		width, height := e.Width, e.Height
		if width == 0 {
			width, height = 300, 250
		}
		label := html.EscapeString(e.Rel)
		src := html.EscapeString(path.Join(e.Rel, generate.MarkerFile))
		fmt.Fprintf(&b, `<div class="banner" data-name="%s">
<h2>%s</h2>
<iframe src="%s" width="%d" height="%d" scrolling="no"></iframe>
</div>
`, label, label, src, width, height)
	}

	b.WriteString(`</div>
<script>
document.getElementById('filter').addEventListener('input', function () {
  var needle = this.value.toLowerCase();
  document.querySelectorAll('.banner').forEach(function (el) {
    el.style.display = el.dataset.name.toLowerCase().indexOf(needle) === -1 ? 'none' : '';
  });
});
</script>
</body>
</html>
`)
	return b.String()
}
