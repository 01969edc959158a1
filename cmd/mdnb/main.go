// Command mdnb converts markdown documents containing ```python fenced code
// blocks into Colab-suitable Jupyter notebooks, written next to the source
// files with the .ipynb extension.
//
// Usage:
//
//	mdnb [flags] [document ...]
//
// Flags:
//
//	-dir string   Directory containing the documents (default ".")
//	-glob string  Discovery pattern used when no documents are listed (default "*.md")
//	-preview      Render notebooks to the terminal instead of writing files
//	-width int    Preview width in columns (default 100)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mdnb"
	"github.com/fwojciec/mdnb/fs"
	"github.com/fwojciec/mdnb/goldmark"
	nbjson "github.com/fwojciec/mdnb/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdnb: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir     = flag.String("dir", ".", "Directory containing the documents")
		glob    = flag.String("glob", "*.md", "Discovery pattern used when no documents are listed")
		preview = flag.Bool("preview", false, "Render notebooks to the terminal instead of writing files")
		width   = flag.Int("width", 100, "Preview width in columns")
	)
	flag.Parse()

	store := &fs.Store{Dir: *dir}
	docs, err := resolveDocs(store, flag.Args(), *glob)
	if err != nil {
		return err
	}

	var writer mdnb.NotebookWriter = nbjson.Writer{}
	logOut := io.Writer(os.Stdout)
	if *preview {
		writer = &previewWriter{out: os.Stdout, width: *width, theme: mdnb.DefaultTheme()}
		// Keep stdout clean for the rendered preview.
		logOut = os.Stderr
	}

	batch := mdnb.NewBatch(store, writer)
	if *preview {
		batch.Action = "Previewed"
	}
	batch.Logf = func(format string, args ...any) {
		fmt.Fprintf(logOut, format+"\n", args...)
	}
	return batch.Run(mdnb.Config{Dir: *dir, Docs: docs})
}

// resolveDocs returns the explicit document list when one is given, falling
// back to glob discovery in the store's directory.
func resolveDocs(store *fs.Store, args []string, glob string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	docs, err := store.Discover(glob)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents match %q in %s", glob, store.Dir)
	}
	return docs, nil
}

// previewWriter renders notebooks to the terminal instead of persisting them.
type previewWriter struct {
	out   io.Writer
	width int
	theme mdnb.Theme
}

func (w *previewWriter) WriteNotebook(_ mdnb.Document, nb mdnb.Notebook) error {
	_, err := fmt.Fprintln(w.out, goldmark.Render(nb, w.width, w.theme))
	return err
}
