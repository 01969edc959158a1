package mdnb

// Notebook is the transient in-memory form of one converted document: an
// ordered cell sequence plus the identifiers the metadata envelope needs.
// The wire-format envelope itself (nbformat versions, kernel descriptors)
// lives in the json package.
type Notebook struct {
	Name  string // output file name, "<stem>.ipynb"
	Title string
	Cells []Cell
}

// Convert transforms a document into a notebook. A document that yields no
// cells (no fences, nothing but whitespace) becomes a single markdown cell
// holding the untrimmed document text.
func Convert(doc Document) Notebook {
	cells := SplitCells(doc.Text)
	if len(cells) == 0 {
		cells = []Cell{NewMarkdownCell(doc.Text)}
	}
	return Notebook{
		Name:  doc.OutputName(),
		Title: Title(doc.Text, doc.Stem()),
		Cells: cells,
	}
}
