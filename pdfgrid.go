// Package pdfgrid converts PDF pages into plain text that approximates the
// original visual layout, using only whitespace and newlines.
package pdfgrid

import (
	"fmt"

	"github.com/textops/pdfgrid/pkg/layout"
	"github.com/textops/pdfgrid/pkg/pdf"
)

// Re-export types from the pdf and layout packages for the public API
type (
	Document     = pdf.Document
	PageLayout   = pdf.PageLayout
	TextFragment = pdf.TextFragment
	Metadata     = pdf.Metadata
	DocumentInfo = pdf.DocumentInfo

	Result           = layout.Result
	FlatText         = layout.FlatText
	StructuredResult = layout.StructuredResult
	Option           = layout.Option
)

// Re-export option functions
var (
	WithYTolerance       = layout.WithYTolerance
	WithCharWidthDivisor = layout.WithCharWidthDivisor
	WithLayout           = layout.WithLayout
	WithDebugLogger      = layout.WithDebugLogger
)

// Open opens a PDF file and returns a Document.
func Open(filepath string) (pdf.Document, error) {
	// Try ledongthuc first as it has the most accurate positions and reads
	// the Info dictionary.
	doc, err := pdf.OpenWithLedongthuc(filepath)
	if err == nil {
		return doc, nil
	}

	// Fallback to the dslipak implementation.
	return pdf.OpenWithDslipak(filepath)
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library.
func OpenWithLedongthuc(filepath string) (pdf.Document, error) {
	return pdf.OpenWithLedongthuc(filepath)
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library.
func OpenWithDslipak(filepath string) (pdf.Document, error) {
	return pdf.OpenWithDslipak(filepath)
}

// Inspect validates a PDF and reports page count and page dimensions without
// extracting text.
func Inspect(filepath string) (pdf.DocumentInfo, error) {
	return pdf.Inspect(filepath)
}

// Extract runs the extraction over already-collected pages.
func Extract(pages []pdf.PageLayout, meta pdf.Metadata, opts ...Option) (Result, error) {
	return layout.Extract(pages, meta, opts...)
}

// Reconstruct renders already-collected pages into layout-preserving text.
func Reconstruct(pages []pdf.PageLayout, opts ...Option) (string, error) {
	return layout.Reconstruct(pages, opts...)
}

// ExtractFile opens a PDF and runs the extraction in one call. With
// WithLayout(true) the result carries the reconstructed layout text and
// per-page fragment detail; otherwise it is the flat text alone.
func ExtractFile(filepath string, opts ...Option) (Result, error) {
	doc, err := Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath, err)
	}
	defer doc.Close()

	return layout.Extract(doc.Pages(), doc.Metadata(), opts...)
}
