package campaign

import (
	"encoding/json"
	"fmt"
	"os"

	"html-banner-generator/core/utils"
)

// Load reads a campaign document from path and normalizes it into the
// canonical Campaign shape. The document is either a bare ordered array of
// format objects or an object carrying a "formats" array plus optional
// campaign-level fields; the ambiguity is resolved here, once, and never
// propagated further.
func Load(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read campaign config %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse campaign config %s: %w", path, err)
	}

	c := &Campaign{}
	var rawFormats []any

	switch v := doc.(type) {
	case []any:
		rawFormats = v
	case map[string]any:
		c.Name = utils.ToString(v["campaign"])
		c.ClickTag = utils.ToString(v["clicktag"])
		c.TemplateType = nestedType(v, "brand")
		formats, ok := v["formats"].([]any)
		if !ok {
			return nil, fmt.Errorf("campaign config %s: missing formats array", path)
		}
		rawFormats = formats
	default:
		return nil, fmt.Errorf("campaign config %s: expected object or array", path)
	}

	if len(rawFormats) == 0 {
		return nil, fmt.Errorf("campaign config %s: empty format list", path)
	}

	for i, rf := range rawFormats {
		obj, ok := rf.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("format %d: expected object", i)
		}
		f, err := normalizeFormat(i, obj)
		if err != nil {
			return nil, err
		}
		c.Formats = append(c.Formats, f)
	}

	return c, nil
}

// normalizeFormat converts one raw format object into a FormatSpec,
// resolving key aliases and validating required dimensions.
func normalizeFormat(index int, raw map[string]any) (FormatSpec, error) {
	width, err := positiveInt(raw["width"])
	if err != nil {
		return FormatSpec{}, fmt.Errorf("format %d: width %v", index, err)
	}
	height, err := positiveInt(raw["height"])
	if err != nil {
		return FormatSpec{}, fmt.Errorf("format %d: height %v", index, err)
	}

	return FormatSpec{
		Index:        index,
		Width:        width,
		Height:       height,
		Language:     aliased(raw, "language", "lang"),
		Motive:       aliased(raw, "motive", "motiveName"),
		SizeBudget:   utils.ToString(raw["size"]),
		ClickTag:     utils.ToString(raw["clicktag"]),
		AdServer:     nestedType(raw, "adserver"),
		TemplateType: nestedType(raw, "brand"),
		Raw:          raw,
	}, nil
}

// aliased returns the canonical key's value when present, falling back to
// the legacy alias. The canonical key wins when both are set.
func aliased(raw map[string]any, canonical, alias string) string {
	if v, ok := raw[canonical]; ok {
		return utils.ToString(v)
	}
	return utils.ToString(raw[alias])
}

// nestedType extracts the "type" field of a nested object such as
// {"brand": {"type": "premium"}} or {"adserver": {"type": "adform"}}.
func nestedType(raw map[string]any, key string) string {
	obj, ok := raw[key].(map[string]any)
	if !ok {
		return ""
	}
	return utils.ToString(obj["type"])
}

// positiveInt validates that a raw JSON value is a positive integer
// dimension. Malformed dimensions are fatal for the whole run.
func positiveInt(v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("is required")
	}
	n := utils.ToInt(v)
	if n <= 0 {
		return 0, fmt.Errorf("%v is not a positive integer", v)
	}
	return n, nil
}
