package mdnb

import "fmt"

// Config describes one batch run: where the source documents live and which
// of them to convert, in order.
type Config struct {
	Dir  string   // directory containing the source documents
	Docs []string // ordered document file names, e.g. "Lab1_Anatomy.md"
}

// Validate checks universal constraints on Config.
func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir must not be empty: %w", ErrValidation)
	}
	if len(c.Docs) == 0 {
		return fmt.Errorf("docs must not be empty: %w", ErrValidation)
	}
	for i, name := range c.Docs {
		if name == "" {
			return fmt.Errorf("docs[%d] must not be empty: %w", i, ErrValidation)
		}
	}
	return nil
}
