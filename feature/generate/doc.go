// Package generate is the reconciliation engine at the heart of the banner
// generator.
//
// For each configured format it decides whether the on-disk artifact is new,
// stale or up-to-date, based on a content fingerprint of the format
// configuration and the asset file list, and applies the active
// reconciliation mode's create/update/skip policy. Template instantiation
// happens exactly once per artifact lifetime; re-renders only touch dynamic
// source files, so hand-edited overrides and campaign assets are never
// clobbered.
//
// # Reconciliation modes
//
//   - incremental (default): create when missing, re-render when stale
//   - create-only: create when missing, never touch existing artifacts
//   - update: never create, always re-render existing artifacts
//
// Formats are processed strictly sequentially; the run is all-or-nothing and
// the first unrecovered error aborts it. Size-budget overruns are the one
// exception: they are accumulated as warnings and never fail a run.
package generate
