package generate

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"html-banner-generator/core/walk"
)

// Vars is the fixed variable set substituted into every dynamic source of an
// artifact.
type Vars struct {
	// Campaign is the campaign name.
	Campaign string

	// Language is the resolved language code, empty when not configured.
	Language string

	// Motive is the resolved motive name, empty when not configured.
	Motive string

	// Width and Height are the banner dimensions in pixels.
	Width  int
	Height int

	// Size is the "WxH" dimension string, e.g. "300x250".
	Size string

	// SizeBudget is the declared packaged-size ceiling in bytes, zero when
	// no budget was declared.
	SizeBudget int64

	// AdServer is the ad-server type tag copied into rendered output.
	AdServer string

	// ClickTag is the resolved click-through URL.
	ClickTag string

	// Assets lists the artifact's static files.
	Assets []Asset

	// Spec is the raw format configuration as canonical JSON text.
	Spec string

	// TemplateType is the resolved template type.
	TemplateType string
}

// Render re-renders the dynamic sources of an artifact. Every file carrying
// the source suffix is parsed as a template, executed with vars and written
// under its suffix-stripped name. The assets subdirectory is never entered.
func Render(dir string, vars Vars) error {
	return walk.Walk(dir, func(path, rel string, d fs.DirEntry) (walk.Decision, error) {
		if d.IsDir() {
			if d.Name() == AssetsDirName {
				return walk.SkipDir, nil
			}
			return walk.Continue, nil
		}
		if !strings.HasSuffix(d.Name(), SourceSuffix) {
			return walk.Continue, nil
		}
		if err := renderFile(path, vars); err != nil {
			return walk.Stop, err
		}
		return walk.Continue, nil
	})
}

func renderFile(srcPath string, vars Vars) error {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read template source %s: %w", srcPath, err)
	}

	tmpl, err := template.New(filepath.Base(srcPath)).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse template source %s: %w", srcPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return fmt.Errorf("render template source %s: %w", srcPath, err)
	}

	outPath := strings.TrimSuffix(srcPath, SourceSuffix)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write rendered file %s: %w", outPath, err)
	}
	return nil
}
