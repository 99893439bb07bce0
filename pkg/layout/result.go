package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/textops/pdfgrid/pkg/pdf"
)

// Result is the outcome of Extract: either FlatText or *StructuredResult,
// depending on WithLayout.
type Result interface {
	isResult()
}

// FlatText is the plain concatenation of fragment contents in parse order.
type FlatText string

func (FlatText) isResult() {}

// StructuredResult bundles the flat text with the reconstructed layout and
// per-page detail.
type StructuredResult struct {
	Text          string           `json:"text"`
	Layout        string           `json:"layout"`
	Metadata      pdf.Metadata     `json:"metadata"`
	Pages         []pdf.PageLayout `json:"pages"`
	PageCount     int              `json:"page_count"`
	FragmentCount int              `json:"fragment_count"`
}

func (*StructuredResult) isResult() {}

// Extract is the caller-facing entry point. It validates the configuration
// and input coordinates, then returns the flat text alone or, with
// WithLayout(true), the structured result. Zero pages are not an error.
func Extract(pages []pdf.PageLayout, meta pdf.Metadata, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkCoordinates(pages); err != nil {
		return nil, err
	}

	flat := FlattenText(pages)
	if !cfg.includeLayout {
		return FlatText(flat), nil
	}

	res := &StructuredResult{
		Text:      flat,
		Layout:    reconstruct(pages, cfg),
		Metadata:  meta,
		Pages:     pages,
		PageCount: len(pages),
	}
	for _, page := range pages {
		res.FragmentCount += len(page.Fragments)
	}
	return res, nil
}

// FlattenText concatenates fragment contents in parse order, with a blank
// line between pages that have any text.
func FlattenText(pages []pdf.PageLayout) string {
	var texts []string
	for _, page := range pages {
		var b strings.Builder
		for _, frag := range page.Fragments {
			b.WriteString(frag.Content)
		}
		if b.Len() > 0 {
			texts = append(texts, b.String())
		}
	}
	return strings.Join(texts, "\n\n")
}

// checkCoordinates rejects non-finite fragment positions up front. The
// clustering comparison and column rounding would otherwise propagate NaN
// silently and corrupt row assignment.
func checkCoordinates(pages []pdf.PageLayout) error {
	for _, page := range pages {
		for _, frag := range page.Fragments {
			if !isFinite(frag.X) || !isFinite(frag.Y) {
				return fmt.Errorf("page %d: fragment %q has non-finite coordinates (%v, %v)",
					page.PageNumber, frag.Content, frag.X, frag.Y)
			}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
