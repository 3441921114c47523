// Package preview builds the aggregate preview page and serves the output
// tree for local browsing.
//
// Discovery walks the output root and treats every directory carrying an
// entry marker file as one banner artifact. The page builder is stateless
// and pure: it formats the discovery result into a single HTML document with
// embedded live views and a client-side text filter.
package preview
