package mdnb

import (
	"regexp"
	"strings"
	"unicode"
)

// Only fences tagged exactly "python" become code cells. Bare ``` fences
// (Mermaid diagrams and other non-executable blocks) stay embedded in the
// surrounding markdown text, so a non-code fence cannot cascade cell-type
// mismatches down the document. The closing fence must be ``` alone on its
// own line; trailing spaces and tabs are tolerated on both markers.
var (
	fenceRE = regexp.MustCompile("(?ms)^```python[ \t]*\n(.*?)\n^```[ \t]*$")

	// The second optional newline matters: the artifact may be separated
	// from the matched fence by a blank line, and $ here anchors to the end
	// of the preceding text only.
	danglingRE = regexp.MustCompile("\\s*```python[ \t]*\n?\n?$")
)

// SplitCells scans text left to right for python-fenced regions and returns
// the ordered cell sequence: one markdown cell per non-empty stretch of text
// between fences, one code cell per fenced region. The result is empty when
// the text is empty or entirely whitespace and contains no fences; callers
// that require at least one cell substitute the whole document (see Convert).
func SplitCells(text string) []Cell {
	var cells []Cell
	last := 0
	for _, m := range fenceRE.FindAllStringSubmatchIndex(text, -1) {
		before := text[last:m[0]]
		before = strings.TrimSpace(danglingRE.ReplaceAllString(before, ""))
		if before != "" {
			cells = append(cells, NewMarkdownCell(before))
		}
		code := strings.TrimRightFunc(text[m[2]:m[3]], unicode.IsSpace)
		cells = append(cells, NewCodeCell(code))
		last = m[1]
	}
	after := strings.TrimSpace(text[last:])
	if after != "" {
		cells = append(cells, NewMarkdownCell(after))
	}
	return cells
}
