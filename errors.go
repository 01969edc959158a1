package mdnb

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNotFound indicates a configured document does not exist on disk.
	// The batch driver treats it as non-fatal and skips the document.
	ErrNotFound = errors.New("document not found")

	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")
)
