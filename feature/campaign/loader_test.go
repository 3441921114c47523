package campaign

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "banners.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_ObjectForm loads the object document shape with campaign-level
// fields.
func TestLoad_ObjectForm(t *testing.T) {
	path := writeConfig(t, `{
		"campaign": "summer-sale",
		"clicktag": "https://example.com",
		"brand": {"type": "premium"},
		"formats": [
			{"width": 300, "height": 250, "language": "en", "size": "150kb"},
			{"width": 728, "height": 90, "motive": "beach", "adserver": {"type": "adform"}}
		]
	}`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "summer-sale", c.Name)
	assert.Equal(t, "https://example.com", c.ClickTag)
	assert.Equal(t, "premium", c.TemplateType)
	require.Len(t, c.Formats, 2)

	f := c.Formats[0]
	assert.Equal(t, 0, f.Index)
	assert.Equal(t, 300, f.Width)
	assert.Equal(t, 250, f.Height)
	assert.Equal(t, "en", f.Language)
	assert.Equal(t, "150kb", f.SizeBudget)
	assert.Equal(t, "300x250", f.Dimensions())

	f = c.Formats[1]
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, "beach", f.Motive)
	assert.Equal(t, "adform", f.AdServer)
}

// TestLoad_BareArrayForm loads the legacy bare-array document shape.
func TestLoad_BareArrayForm(t *testing.T) {
	path := writeConfig(t, `[
		{"width": 160, "height": 600}
	]`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, c.Name)
	require.Len(t, c.Formats, 1)
	assert.Equal(t, "160x600", c.Formats[0].Dimensions())
}

// TestLoad_KeyAliases verifies lang/motiveName alias resolution, with the
// canonical key winning when both are present.
func TestLoad_KeyAliases(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		language string
		motive   string
	}{
		{
			name:     "alias only",
			format:   `{"width":1,"height":1,"lang":"de","motiveName":"city"}`,
			language: "de",
			motive:   "city",
		},
		{
			name:     "canonical only",
			format:   `{"width":1,"height":1,"language":"en","motive":"beach"}`,
			language: "en",
			motive:   "beach",
		},
		{
			name:     "canonical wins over alias",
			format:   `{"width":1,"height":1,"language":"en","lang":"de","motive":"beach","motiveName":"city"}`,
			language: "en",
			motive:   "beach",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, `[`+tt.format+`]`)
			c, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.language, c.Formats[0].Language)
			assert.Equal(t, tt.motive, c.Formats[0].Motive)
		})
	}
}

// TestLoad_InvalidDocuments covers the fatal configuration errors.
func TestLoad_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing width", content: `[{"height":250}]`},
		{name: "non-numeric width", content: `[{"width":"wide","height":250}]`},
		{name: "negative height", content: `[{"width":300,"height":-1}]`},
		{name: "empty format list", content: `{"formats":[]}`},
		{name: "missing formats array", content: `{"campaign":"c"}`},
		{name: "scalar document", content: `42`},
		{name: "malformed json", content: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

// TestLoad_NumericStringDimensions accepts quoted numbers, which occur in
// hand-written documents.
func TestLoad_NumericStringDimensions(t *testing.T) {
	path := writeConfig(t, `[{"width":"300","height":"250"}]`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Formats[0].Width)
	assert.Equal(t, 250, c.Formats[0].Height)
}

// TestLoad_MissingFile surfaces the read error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestLoad_RawPreserved keeps the source object on the format for
// fingerprinting.
func TestLoad_RawPreserved(t *testing.T) {
	path := writeConfig(t, `[{"width":300,"height":250,"custom":"x"}]`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", c.Formats[0].Raw["custom"])
}
