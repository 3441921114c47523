// Package bundle packages finished banner artifacts into zip archives and
// verifies them against their declared size budgets.
//
// Archives contain only rendered, deployable output: pre-substitution
// template sources, OS metadata files and the generator's internal state
// record are excluded. Compression uses flate at best compression so the
// checked size is as close as possible to what an ad network would measure.
package bundle
