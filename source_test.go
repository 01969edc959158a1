package mdnb_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mdnb"
	"github.com/stretchr/testify/assert"
)

func TestSourceLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text yields empty sequence", "", []string{}},
		{"single line without newline", "x=1", []string{"x=1\n"}},
		{"two lines without trailing newline", "a\nb", []string{"a\n", "b\n"}},
		{"trailing newline yields no empty element", "a\nb\n", []string{"a\n", "b\n"}},
		{"blank interior line preserved", "a\n\nb\n", []string{"a\n", "\n", "b\n"}},
		{"only a newline", "\n", []string{"\n"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdnb.SourceLines(tt.text))
		})
	}
}

func TestSourceLines_RoundTrip(t *testing.T) {
	t.Parallel()

	// Joining the encoded lines reconstructs newline-terminated input exactly.
	inputs := []string{
		"hello\n",
		"a\nb\nc\n",
		"# Heading\n\nparagraph with trailing spaces   \n",
		"unicode: café ünïcode 日本語\n",
		"\n\n\n",
	}
	for _, in := range inputs {
		assert.Equal(t, in, strings.Join(mdnb.SourceLines(in), ""))
	}
}

func TestCell_Text(t *testing.T) {
	t.Parallel()

	t.Run("joins source lines", func(t *testing.T) {
		t.Parallel()
		cell := mdnb.NewCodeCell("x = 1\ny = 2")
		assert.Equal(t, "x = 1\ny = 2\n", cell.Text())
	})

	t.Run("empty cell yields empty text", func(t *testing.T) {
		t.Parallel()
		cell := mdnb.NewMarkdownCell("")
		assert.Equal(t, "", cell.Text())
		assert.Empty(t, cell.Source)
	})
}
