package mdnb

import (
	"errors"
	"fmt"
	"path/filepath"
)

// DocumentReader resolves a configured document name and reads its text.
// A missing document is reported as an error wrapping ErrNotFound.
type DocumentReader interface {
	ReadDocument(name string) (Document, error)
}

// NotebookWriter persists one converted notebook for its source document.
type NotebookWriter interface {
	WriteNotebook(doc Document, nb Notebook) error
}

// Batch drives the per-document conversion loop. Documents are processed
// strictly sequentially in configured order, each conversion independent of
// the others. A missing document is skipped with a diagnostic; any other
// read or write failure aborts the run.
type Batch struct {
	reader DocumentReader
	writer NotebookWriter

	// Logf receives one diagnostic line per document. Nil disables output.
	Logf func(format string, args ...any)

	// Action names the writer's effect in per-document diagnostics.
	// Empty means "Wrote".
	Action string
}

// NewBatch creates a batch driver over the given reader and writer.
func NewBatch(r DocumentReader, w NotebookWriter) *Batch {
	return &Batch{reader: r, writer: w}
}

// Run converts every document named in cfg, in order.
func (b *Batch) Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, name := range cfg.Docs {
		doc, err := b.reader.ReadDocument(name)
		if errors.Is(err, ErrNotFound) {
			b.logf("Skip (not found): %s", filepath.Join(cfg.Dir, name))
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		nb := Convert(doc)
		if err := b.writer.WriteNotebook(doc, nb); err != nil {
			return fmt.Errorf("write %s: %w", nb.Name, err)
		}
		b.logf("%s %s (%d cells)", b.action(), nb.Name, len(nb.Cells))
	}
	return nil
}

func (b *Batch) action() string {
	if b.Action == "" {
		return "Wrote"
	}
	return b.Action
}

func (b *Batch) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}
