package pdf

// Document is a parsed PDF reduced to what the layout reconstructor
// consumes: per-page positioned fragments plus the information dictionary.
type Document interface {
	// Metadata returns the document information dictionary.
	Metadata() Metadata

	// Pages returns all pages in document order.
	Pages() []PageLayout

	// Page returns a specific page by index (0-based).
	Page(index int) (PageLayout, error)

	// PageCount returns the total number of pages.
	PageCount() int

	// Close releases resources associated with the document.
	Close() error
}
