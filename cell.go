package mdnb

import "strings"

// CellType discriminates notebook cell variants.
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
)

// Cell is the atomic unit of notebook content. Source holds the cell's text
// as a line sequence in notebook source format (see SourceLines). Code cells
// carry empty execution-count and outputs placeholders at serialization time;
// those are wire-format concerns and do not appear here.
type Cell struct {
	Type   CellType
	Source []string
}

// NewMarkdownCell returns a markdown cell holding text.
func NewMarkdownCell(text string) Cell {
	return Cell{Type: CellMarkdown, Source: SourceLines(text)}
}

// NewCodeCell returns a code cell holding text.
func NewCodeCell(text string) Cell {
	return Cell{Type: CellCode, Source: SourceLines(text)}
}

// Text joins the cell's source lines back into a single string.
func (c Cell) Text() string {
	return strings.Join(c.Source, "")
}
