package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	lpdf "github.com/ledongthuc/pdf"
)

// Default page dimensions (US Letter, in points) used when a page carries no
// usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// LedongthucDocument implements the Document interface using the
// ledongthuc/pdf library. This backend reports one fragment per text item in
// the content stream, with coordinates straight from the text matrix.
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []PageLayout
	metadata Metadata
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library.
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	doc.extractMetadata()

	if err := doc.collectPages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to collect pages: %w", err)
	}

	return doc, nil
}

// extractMetadata reads the trailer's Info dictionary.
func (d *LedongthucDocument) extractMetadata() {
	info := d.reader.Trailer().Key("Info")
	if info.Kind() != lpdf.Dict {
		return
	}

	d.metadata = Metadata{
		Title:        infoString(info, "Title"),
		Author:       infoString(info, "Author"),
		Subject:      infoString(info, "Subject"),
		Keywords:     infoString(info, "Keywords"),
		Creator:      infoString(info, "Creator"),
		Producer:     infoString(info, "Producer"),
		CreationDate: parsePDFDate(infoString(info, "CreationDate")),
		ModDate:      parsePDFDate(infoString(info, "ModDate")),
	}
}

// infoString reads a string entry from an Info dictionary value.
func infoString(info lpdf.Value, key string) string {
	v := info.Key(key)
	if v.Kind() != lpdf.String {
		return ""
	}
	return v.Text()
}

// collectPages materializes every page's fragments up front.
func (d *LedongthucDocument) collectPages() error {
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

// collectPage converts one page's text items into fragments.
func (d *LedongthucDocument) collectPage(pageNumber int) (PageLayout, error) {
	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return PageLayout{}, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := d.reader.Page(pageNumber)

	width := defaultPageWidth
	height := defaultPageHeight

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		// MediaBox is [x0, y0, x1, y1]
		x0 := mediaBox.Index(0).Float64()
		y0 := mediaBox.Index(1).Float64()
		x1 := mediaBox.Index(2).Float64()
		y1 := mediaBox.Index(3).Float64()
		width = x1 - x0
		height = y1 - y0
	}

	layout := PageLayout{
		PageNumber: pageNumber,
		Width:      width,
		Height:     height,
	}

	content := page.Content()
	for _, text := range content.Text {
		// Y is the baseline in PDF space, which already increases upward --
		// exactly the frame the reconstructor expects, so no flip here.
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
func (d *LedongthucDocument) Metadata() Metadata {
	return d.metadata
}

// Pages returns all pages in document order.
func (d *LedongthucDocument) Pages() []PageLayout {
	return d.pages
}

// Page returns a specific page by index (0-based).
func (d *LedongthucDocument) Page(index int) (PageLayout, error) {
	if index < 0 || index >= len(d.pages) {
		return PageLayout{}, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages.
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document.
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// pdfDateLayouts lists the date precisions PDF producers actually emit,
// longest first.
var pdfDateLayouts = []string{
	"20060102150405-0700",
	"20060102150405",
	"200601021504",
	"2006010215",
	"20060102",
	"200601",
	"2006",
}

// parsePDFDate parses a PDF date string such as "D:20240115093000+01'00'".
// Unparseable or empty input yields the zero time.
func parsePDFDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "D:")
	s = strings.ReplaceAll(s, "'", "")

	// A trailing Z (optionally followed by a zero offset) means UTC.
	if i := strings.IndexByte(s, 'Z'); i >= 0 {
		s = s[:i]
	}

	for _, layout := range pdfDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
