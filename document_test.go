package mdnb_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdnb"
	"github.com/stretchr/testify/assert"
)

func TestDocument_Stem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  mdnb.Document
		want string
	}{
		{"strips extension", mdnb.Document{Name: "Lab1_Anatomy.md"}, "Lab1_Anatomy"},
		{"no extension", mdnb.Document{Name: "notes"}, "notes"},
		{"strips directory", mdnb.Document{Name: filepath.Join("sub", "doc.md")}, "doc"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.doc.Stem())
		})
	}
}

func TestDocument_OutputName(t *testing.T) {
	t.Parallel()
	doc := mdnb.Document{Name: "Lab1_Anatomy.md"}
	assert.Equal(t, "Lab1_Anatomy.ipynb", doc.OutputName())
}

func TestDocument_OutputPath(t *testing.T) {
	t.Parallel()
	doc := mdnb.Document{
		Name: "doc.md",
		Path: filepath.Join("labs", "doc.md"),
	}
	assert.Equal(t, filepath.Join("labs", "doc.ipynb"), doc.OutputPath())
}
