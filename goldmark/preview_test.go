package goldmark_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mdnb"
	"github.com/fwojciec/mdnb/goldmark"
	"github.com/stretchr/testify/assert"
)

func previewNotebook() mdnb.Notebook {
	return mdnb.Notebook{
		Name:  "lab.ipynb",
		Title: "Anatomy of a Decision",
		Cells: []mdnb.Cell{
			mdnb.NewMarkdownCell("# Anatomy of a Decision\n\nSome **bold** intro."),
			mdnb.NewCodeCell("x = 1\nprint(x)"),
			mdnb.NewMarkdownCell("- one\n- two"),
		},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := mdnb.DefaultTheme()

	t.Run("includes the notebook title", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render(previewNotebook(), 80, theme)
		assert.Contains(t, result, "Anatomy of a Decision")
	})

	t.Run("includes markdown cell text", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render(previewNotebook(), 80, theme)
		assert.Contains(t, result, "bold")
		assert.Contains(t, result, "intro")
	})

	t.Run("includes code cell text with language label", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render(previewNotebook(), 80, theme)
		assert.Contains(t, result, "python")
		assert.Contains(t, result, "x = 1")
		assert.Contains(t, result, "print(x)")
	})

	t.Run("code lines are not reflowed at narrow width", func(t *testing.T) {
		t.Parallel()
		nb := mdnb.Notebook{
			Name:  "w.ipynb",
			Title: "W",
			Cells: []mdnb.Cell{mdnb.NewCodeCell(`print("a long unbroken line of code")`)},
		}
		result := goldmark.Render(nb, 10, theme)
		assert.Contains(t, result, `print("a long unbroken line of code")`)
	})

	t.Run("renders list items", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render(previewNotebook(), 80, theme)
		assert.Contains(t, result, "one")
		assert.Contains(t, result, "two")
	})

	t.Run("notebook without cells renders the title only", func(t *testing.T) {
		t.Parallel()
		nb := mdnb.Notebook{Name: "t.ipynb", Title: "Just a Title"}
		result := goldmark.Render(nb, 80, theme)
		assert.Contains(t, result, "Just a Title")
	})

	t.Run("empty code cell still shows its gutter", func(t *testing.T) {
		t.Parallel()
		nb := mdnb.Notebook{
			Name:  "e.ipynb",
			Title: "E",
			Cells: []mdnb.Cell{mdnb.NewCodeCell("")},
		}
		result := goldmark.Render(nb, 80, theme)
		assert.Contains(t, result, "│")
	})

	t.Run("zero width falls back to default", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render(previewNotebook(), 0, theme)
		assert.Contains(t, result, "intro")
	})

	t.Run("ends with a single trailing newline", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render(previewNotebook(), 80, theme)
		assert.True(t, strings.HasSuffix(result, "\n"))
		assert.False(t, strings.HasSuffix(result, "\n\n"))
	})
}
