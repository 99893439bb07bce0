package layout

import (
	"fmt"
	"strings"

	"github.com/textops/pdfgrid/pkg/pdf"
)

// Page banner shape. Tests depend on the exact rule width and label format.
const separatorWidth = 80

var separatorRule = strings.Repeat("-", separatorWidth)

// renderPage reconstructs one page into its content lines. A page with no
// fragments contributes no lines at all, not even a blank one.
func renderPage(page pdf.PageLayout, cfg config) []string {
	if len(page.Fragments) == 0 {
		return nil
	}

	groups := clusterRows(page.Fragments, cfg.yTolerance, cfg.debugLog)
	leftmost := leftmostX(page.Fragments)

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, renderRow(g, leftmost, cfg.charWidthDivisor))
	}
	return lines
}

// reconstruct joins per-page renderings into one document string. Page 1 has
// no leading banner; each later page is introduced by a blank line, an
// 80-character rule, a "Page <n>" label with the page number supplied by the
// collector, another rule, and a blank line.
func reconstruct(pages []pdf.PageLayout, cfg config) string {
	var lines []string
	for i, page := range pages {
		if i > 0 {
			lines = append(lines,
				"",
				separatorRule,
				fmt.Sprintf("Page %d", page.PageNumber),
				separatorRule,
				"",
			)
		}
		lines = append(lines, renderPage(page, cfg)...)
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Reconstruct renders the pages' fragments into the layout-preserving
// plain-text form. Zero pages yield an empty string.
func Reconstruct(pages []pdf.PageLayout, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if err := checkCoordinates(pages); err != nil {
		return "", err
	}
	return reconstruct(pages, cfg), nil
}
