package campaign

import "fmt"

// FormatSpec describes one configured banner variant.
// Its identity within a run is the list index plus the
// (language, motive, width, height) tuple, which also determines the
// artifact output path. Instances are immutable for the duration of a run.
type FormatSpec struct {
	// Index is the position of the format in the campaign document.
	Index int `json:"index"`

	// Width is the banner width in pixels. Required, positive.
	Width int `json:"width"`

	// Height is the banner height in pixels. Required, positive.
	Height int `json:"height"`

	// Language is the optional language code (e.g. "en", "de").
	Language string `json:"language,omitempty"`

	// Motive is the optional creative motive name.
	Motive string `json:"motive,omitempty"`

	// SizeBudget is the optional packaged-size ceiling, e.g. "150kb".
	SizeBudget string `json:"size,omitempty"`

	// ClickTag is the per-format click-through URL override.
	ClickTag string `json:"clicktag,omitempty"`

	// AdServer is the ad-server type tag copied into rendered output.
	AdServer string `json:"adserver,omitempty"`

	// TemplateType is the per-format template type override.
	TemplateType string `json:"templateType,omitempty"`

	// Raw is the normalized source object this spec was read from.
	// It is what gets fingerprinted, so hand-written key order in the
	// campaign document never influences staleness detection.
	Raw map[string]any `json:"-"`
}

// Dimensions returns the "WxH" form of the format, e.g. "300x250".
func (f FormatSpec) Dimensions() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

// Campaign is the canonical top-level configuration: a name, a default
// click-through URL and the ordered sequence of formats. It is loaded once
// per invocation and read-only afterwards.
type Campaign struct {
	// Name is the campaign name, used in output paths and archive names.
	Name string `json:"campaign"`

	// ClickTag is the campaign-wide default click-through URL.
	ClickTag string `json:"clicktag,omitempty"`

	// TemplateType is the campaign-wide default template type.
	TemplateType string `json:"templateType,omitempty"`

	// Formats is the ordered sequence of banner variants to generate.
	Formats []FormatSpec `json:"formats"`
}
