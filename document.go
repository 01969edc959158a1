// Package mdnb converts markdown documents with python-tagged fenced code
// blocks into Jupyter notebook files suitable for Colab.
package mdnb

import (
	"path/filepath"
	"strings"
)

// Document is a named markdown source read from storage. It is immutable
// once read and discarded after conversion.
type Document struct {
	Name string // file name as configured, e.g. "Lab1_Anatomy.md"
	Path string // resolved absolute or directory-relative path
	Text string // full UTF-8 document text
}

// Stem returns the document's base name without its extension.
func (d Document) Stem() string {
	base := filepath.Base(d.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputName returns the notebook file name derived from the document name.
func (d Document) OutputName() string {
	return d.Stem() + ".ipynb"
}

// OutputPath returns the notebook path: same directory and stem as the
// source, extension replaced with .ipynb.
func (d Document) OutputPath() string {
	ext := filepath.Ext(d.Path)
	return strings.TrimSuffix(d.Path, ext) + ".ipynb"
}
