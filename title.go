package mdnb

import (
	"regexp"
	"strings"
)

// The match is anchored to the start of the document: only a top-level
// heading on the opening line produces a title. Headings further down (or,
// in principle, inside a fence body that reaches the opening line) are not
// considered.
var titleRE = regexp.MustCompile(`(?m)\A#\s+(.+)$`)

// Title returns the document's leading top-level heading text, trimmed.
// When the document does not open with one, it returns fallback (callers
// pass the document stem).
func Title(text, fallback string) string {
	m := titleRE.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	return strings.TrimSpace(m[1])
}
