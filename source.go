package mdnb

import "strings"

// SourceLines converts text to notebook source format: a sequence of lines,
// each terminated with "\n" unless the text ends with a newline already, in
// which case no empty trailing element is emitted. Empty text yields an
// empty sequence. Joining the result reconstructs newline-terminated input
// exactly.
func SourceLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines[:len(lines)-1] {
		out = append(out, line+"\n")
	}
	if last := lines[len(lines)-1]; last != "" {
		out = append(out, last+"\n")
	}
	return out
}
