// Package walk provides a single recursive tree visitor.
//
// Template instantiation, artifact discovery and packaging all traverse
// directory trees; they share this one visitor and differ only in the
// per-entry decision they supply (copy, skip a subtree, stop at the first
// marker file).
package walk
