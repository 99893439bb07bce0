package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/textops/pdfgrid/pkg/pdf"
)

// rowGroup collects fragments judged to lie on the same visual line.
// anchorY is the y of the first fragment assigned to the group and is never
// recomputed, so a group can drift from its true centroid as members join.
type rowGroup struct {
	anchorY   float64
	fragments []pdf.TextFragment
}

// clusterRows partitions a page's fragments into rows. A fragment joins the
// first existing group (in creation order) whose anchor y is strictly within
// yTolerance of its own y; otherwise it opens a new group anchored at its y.
// The first-match policy is load-bearing for output stability: changing it to
// nearest-match or updating anchors produces different renderings.
func clusterRows(fragments []pdf.TextFragment, yTolerance float64, debug *logrus.Logger) []rowGroup {
	sorted := make([]pdf.TextFragment, len(fragments))
	copy(sorted, fragments)

	// Advisory pre-sort, top to bottom then left to right. The clustering
	// pass below re-derives the final order.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var groups []rowGroup
	for _, frag := range sorted {
		idx := -1
		for gi := range groups {
			if math.Abs(groups[gi].anchorY-frag.Y) < yTolerance {
				idx = gi
				break
			}
		}
		if idx < 0 {
			groups = append(groups, rowGroup{anchorY: frag.Y})
			idx = len(groups) - 1
		}
		groups[idx].fragments = append(groups[idx].fragments, frag)

		if debug != nil {
			debug.WithFields(logrus.Fields{
				"text":     frag.Content,
				"y":        fmt.Sprintf("%.2f", frag.Y),
				"x":        fmt.Sprintf("%.2f", frag.X),
				"row_size": len(groups[idx].fragments),
			}).Debug("assigned fragment to row")
		}
	}

	// Rows top to bottom, fragments left to right within each row.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].anchorY > groups[j].anchorY
	})
	for gi := range groups {
		frags := groups[gi].fragments
		sort.SliceStable(frags, func(i, j int) bool {
			return frags[i].X < frags[j].X
		})
	}

	return groups
}
