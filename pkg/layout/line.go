package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/textops/pdfgrid/pkg/pdf"
)

// microSpaceThreshold is the column distance below which two close but
// distinct fragments get a single separating space instead of the computed
// gap. Fixed constant, not derived from the divisor.
const microSpaceThreshold = 3

// targetColumn maps an x-coordinate to a text column relative to the page's
// leftmost fragment.
func targetColumn(x, leftmostX, divisor float64) int {
	return int(math.Round((x - leftmostX) / divisor))
}

// leftmostX returns the minimum x over all fragments on a page. Anchoring
// every row to the same origin is what makes columns align across rows.
func leftmostX(fragments []pdf.TextFragment) float64 {
	min := fragments[0].X
	for _, frag := range fragments[1:] {
		if frag.X < min {
			min = frag.X
		}
	}
	return min
}

// renderRow emits one line of text for a row, approximating the original
// inter-fragment distances with a fixed-pitch column model. Column widths are
// counted in runes so multi-byte text advances one column per glyph.
func renderRow(row rowGroup, leftmost, divisor float64) string {
	var line strings.Builder
	cursor := 0

	for i, frag := range row.fragments {
		target := targetColumn(frag.X, leftmost, divisor)
		if gap := target - cursor; gap > 0 {
			line.WriteString(strings.Repeat(" ", gap))
		}
		line.WriteString(frag.Content)
		cursor = target + utf8.RuneCountInString(frag.Content)

		// Fragments that round to (nearly) touching columns are still
		// distinct words; keep one space between them.
		if i+1 < len(row.fragments) {
			next := targetColumn(row.fragments[i+1].X, leftmost, divisor)
			if bridge := next - cursor; bridge > 0 && bridge < microSpaceThreshold {
				line.WriteByte(' ')
				cursor++
			}
		}
	}

	return strings.TrimRight(line.String(), " \t")
}
