// Package mock provides test doubles for mdnb interfaces using function fields.
package mock

import "github.com/fwojciec/mdnb"

// Interface compliance checks.
var (
	_ mdnb.DocumentReader = (*DocumentReader)(nil)
	_ mdnb.NotebookWriter = (*NotebookWriter)(nil)
)

// DocumentReader is a test double for mdnb.DocumentReader.
// Set ReadDocumentFn before calling ReadDocument.
type DocumentReader struct {
	ReadDocumentFn func(name string) (mdnb.Document, error)
}

// ReadDocument delegates to ReadDocumentFn.
func (r *DocumentReader) ReadDocument(name string) (mdnb.Document, error) {
	return r.ReadDocumentFn(name)
}

// NotebookWriter is a test double for mdnb.NotebookWriter.
// Set WriteNotebookFn before calling WriteNotebook.
type NotebookWriter struct {
	WriteNotebookFn func(doc mdnb.Document, nb mdnb.Notebook) error
}

// WriteNotebook delegates to WriteNotebookFn.
func (w *NotebookWriter) WriteNotebook(doc mdnb.Document, nb mdnb.Notebook) error {
	return w.WriteNotebookFn(doc, nb)
}
