// Package fingerprint computes deterministic content signatures.
//
// The generator uses fingerprints to decide whether a banner format's
// configuration changed since its artifact was last rendered. The signature
// must therefore be independent of mapping key order: the same configuration
// read from differently ordered JSON documents yields the same fingerprint.
package fingerprint
