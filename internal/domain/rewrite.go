package domain

import "strings"

// RewriteBody splices replacement links into a document body. Every
// occurrence of each uploaded reference's verbatim span is replaced, so
// duplicate references to one asset all end up pointing at the new
// location. References without a replacement URL are left untouched.
// Applying RewriteBody again with the same references is a no-op: the
// original spans are gone after the first pass.
func RewriteBody(body string, refs []Reference) string {
	out := body
	for _, r := range refs {
		if r.ReplacementURL == "" {
			continue
		}
		out = strings.ReplaceAll(out, r.Span, r.Rendered())
	}
	return out
}
