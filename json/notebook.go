// Package json implements the nbformat v4.5 notebook wire format.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/mdnb"
)

// Notebook format version written to every envelope.
const (
	nbFormat      = 4
	nbFormatMinor = 5
)

// envelope is the persisted notebook document.
type envelope struct {
	NBFormat      int         `json:"nbformat"`
	NBFormatMinor int         `json:"nbformat_minor"`
	Metadata      metadataDTO `json:"metadata"`
	Cells         []any       `json:"cells"`
}

type metadataDTO struct {
	Colab        colabDTO        `json:"colab"`
	Kernelspec   kernelspecDTO   `json:"kernelspec"`
	LanguageInfo languageInfoDTO `json:"language_info"`
}

type colabDTO struct {
	Name       string   `json:"name"`
	Provenance []string `json:"provenance"`
	TOCVisible bool     `json:"toc_visible"`
}

type kernelspecDTO struct {
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Name        string `json:"name"`
}

type languageInfoDTO struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// markdownCell and codeCell are the two cell wire shapes. Execution count
// and outputs are placeholders for the notebook runtime: always null and
// empty respectively, but present on every code cell.
type markdownCell struct {
	CellType string   `json:"cell_type"`
	Metadata struct{} `json:"metadata"`
	Source   []string `json:"source"`
}

type codeCell struct {
	CellType       string            `json:"cell_type"`
	Metadata       struct{}          `json:"metadata"`
	ExecutionCount *int              `json:"execution_count"`
	Outputs        []json.RawMessage `json:"outputs"`
	Source         []string          `json:"source"`
}

// Marshal serializes a notebook in nbformat v4.5 with 2-space indentation.
// Non-ASCII characters are preserved literally. Output is deterministic for
// a given notebook.
func Marshal(nb mdnb.Notebook) ([]byte, error) {
	env := envelope{
		NBFormat:      nbFormat,
		NBFormatMinor: nbFormatMinor,
		Metadata: metadataDTO{
			Colab: colabDTO{
				Name:       nb.Name,
				Provenance: []string{},
				TOCVisible: true,
			},
			Kernelspec: kernelspecDTO{
				DisplayName: "Python 3",
				Language:    "python",
				Name:        "python3",
			},
			LanguageInfo: languageInfoDTO{
				Name:    "python",
				Version: "3.10.0",
			},
		},
		Cells: make([]any, len(nb.Cells)),
	}
	for i, c := range nb.Cells {
		dto, err := marshalCell(c)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		env.Cells[i] = dto
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, fmt.Errorf("encode notebook: %w", err)
	}
	return buf.Bytes(), nil
}

func marshalCell(c mdnb.Cell) (any, error) {
	src := c.Source
	if src == nil {
		src = []string{}
	}
	switch c.Type {
	case mdnb.CellMarkdown:
		return markdownCell{CellType: "markdown", Source: src}, nil
	case mdnb.CellCode:
		return codeCell{CellType: "code", Outputs: []json.RawMessage{}, Source: src}, nil
	default:
		return nil, fmt.Errorf("unknown cell type: %q", c.Type)
	}
}

// Save writes the serialized notebook to path, overwriting any existing
// file unconditionally.
func Save(path string, nb mdnb.Notebook) error {
	data, err := Marshal(nb)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write notebook: %w", err)
	}
	return nil
}

// Interface compliance check.
var _ mdnb.NotebookWriter = Writer{}

// Writer persists notebooks next to their source documents.
type Writer struct{}

// WriteNotebook writes nb to the document's output path.
func (Writer) WriteNotebook(doc mdnb.Document, nb mdnb.Notebook) error {
	return Save(doc.OutputPath(), nb)
}
