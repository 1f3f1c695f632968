package md2epub

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrPackageAssembly = errors.New("epub package assembly failed")
)
