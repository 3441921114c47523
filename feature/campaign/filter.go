package campaign

import "slices"

// Filters narrows the working set of formats for a run.
// Each predicate is optional; an absent predicate means "no constraint".
// All supplied predicates must pass (logical AND). Matching never mutates
// state and has no side effect beyond a count kept by the caller.
type Filters struct {
	// Sizes restricts to formats whose "WxH" string is in the set.
	Sizes []string

	// Languages restricts to formats with one of these language codes.
	Languages []string

	// Motives restricts to formats with one of these motive names.
	Motives []string

	// Templates restricts to formats whose resolved template type is in
	// the set. Resolution happens before matching, so CLI and campaign
	// level overrides are taken into account.
	Templates []string

	// Indexes restricts to formats at these positions in the document.
	Indexes []int
}

// Empty reports whether no predicate is supplied at all.
func (f Filters) Empty() bool {
	return len(f.Sizes) == 0 && len(f.Languages) == 0 && len(f.Motives) == 0 &&
		len(f.Templates) == 0 && len(f.Indexes) == 0
}

// Match reports whether the format passes every supplied predicate.
// templateType is the format's resolved template type.
func (f Filters) Match(spec FormatSpec, templateType string) bool {
	if len(f.Indexes) > 0 && !slices.Contains(f.Indexes, spec.Index) {
		return false
	}
	if len(f.Sizes) > 0 && !slices.Contains(f.Sizes, spec.Dimensions()) {
		return false
	}
	if len(f.Languages) > 0 && !slices.Contains(f.Languages, spec.Language) {
		return false
	}
	if len(f.Motives) > 0 && !slices.Contains(f.Motives, spec.Motive) {
		return false
	}
	if len(f.Templates) > 0 && !slices.Contains(f.Templates, templateType) {
		return false
	}
	return true
}
