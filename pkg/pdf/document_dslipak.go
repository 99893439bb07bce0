package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DslipakDocument implements the Document interface using the dslipak/pdf
// library. Used as a fallback when the primary backend cannot read a file.
type DslipakDocument struct {
	reader   *gopdf.Reader
	filepath string
	pages    []PageLayout
	metadata Metadata
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library.
func OpenWithDslipak(filepath string) (Document, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DslipakDocument{
		reader:   r,
		filepath: filepath,
	}

	// The dslipak/pdf library doesn't expose the Info dictionary, so
	// metadata stays empty for this backend.
	doc.metadata = Metadata{}

	if err := doc.collectPages(); err != nil {
		return nil, fmt.Errorf("failed to collect pages: %w", err)
	}

	return doc, nil
}

// collectPages materializes every page's fragments up front.
func (d *DslipakDocument) collectPages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]PageLayout, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := d.collectPage(i)
		if err != nil {
			return fmt.Errorf("failed to collect page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// collectPage converts one page's text items into fragments. MediaBox is not
// exposed by this library, so page dimensions default to US Letter.
func (d *DslipakDocument) collectPage(pageNumber int) (PageLayout, error) {
	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return PageLayout{}, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := d.reader.Page(pageNumber)

	layout := PageLayout{
		PageNumber: pageNumber,
		Width:      defaultPageWidth,
		Height:     defaultPageHeight,
	}

	content := page.Content()
	for _, text := range content.Text {
		layout.Fragments = append(layout.Fragments, TextFragment{
			Content:  text.S,
			X:        text.X,
			Y:        text.Y,
			Width:    text.W,
			Height:   text.FontSize,
			FontName: text.Font,
			FontSize: text.FontSize,
		})
	}

	return layout, nil
}

// Metadata returns the document information dictionary.
func (d *DslipakDocument) Metadata() Metadata {
	return d.metadata
}

// Pages returns all pages in document order.
func (d *DslipakDocument) Pages() []PageLayout {
	return d.pages
}

// Page returns a specific page by index (0-based).
func (d *DslipakDocument) Page(index int) (PageLayout, error) {
	if index < 0 || index >= len(d.pages) {
		return PageLayout{}, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages.
func (d *DslipakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document.
func (d *DslipakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}
