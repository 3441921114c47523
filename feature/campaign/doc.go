// Package campaign loads and normalizes the campaign document.
//
// A campaign document is a JSON file describing the banner variants to
// generate: target sizes, languages, motives, budgets and overrides. Two
// document shapes exist in the wild (a bare array of formats, or an object
// with campaign-level fields), and two legacy key aliases (lang/language,
// motiveName/motive); both ambiguities are resolved by Load so the rest of
// the generator only ever sees the canonical Campaign type.
//
// The package also provides the run-level Filters used to narrow the
// working set of formats.
package campaign
