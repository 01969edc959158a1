// Package goldmark renders a converted notebook to ANSI-styled terminal
// output using goldmark for markdown parsing and lipgloss for styling.
package goldmark

import "github.com/fwojciec/mdnb"

// Render returns an ANSI-styled terminal preview of a notebook. Markdown
// cells are parsed and word-wrapped to width. Code cells are printed behind
// a gutter at full width without reflow.
func Render(nb mdnb.Notebook, width int, theme mdnb.Theme) string {
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.renderNotebook(nb, width)
}
