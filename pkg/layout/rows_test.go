package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textops/pdfgrid/pkg/pdf"
)

func frag(content string, x, y float64) pdf.TextFragment {
	return pdf.TextFragment{Content: content, X: x, Y: y}
}

func TestClusterRowsEmpty(t *testing.T) {
	groups := clusterRows(nil, DefaultYTolerance, nil)
	assert.Empty(t, groups)
}

func TestClusterRowsSingleFragment(t *testing.T) {
	groups := clusterRows([]pdf.TextFragment{frag("only", 10, 100)}, 2.0, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, 100.0, groups[0].anchorY)
	require.Len(t, groups[0].fragments, 1)
	assert.Equal(t, "only", groups[0].fragments[0].Content)
}

func TestToleranceBoundaryIsStrict(t *testing.T) {
	// At exactly yTolerance apart the fragments must land in separate rows.
	groups := clusterRows([]pdf.TextFragment{
		frag("a", 0, 100),
		frag("b", 0, 98),
	}, 2.0, nil)
	assert.Len(t, groups, 2)

	// Just inside the tolerance they share a row.
	groups = clusterRows([]pdf.TextFragment{
		frag("a", 0, 100),
		frag("b", 0, 98.1),
	}, 2.0, nil)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].fragments, 2)
}

func TestFirstMatchingGroupWins(t *testing.T) {
	// Anchors at y=100 and y=97; a fragment at y=98.5 is within tolerance of
	// both but joins the group created first.
	groups := clusterRows([]pdf.TextFragment{
		frag("top", 0, 100),
		frag("bottom", 0, 97),
		frag("between", 0, 98.5),
	}, 2.0, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, 100.0, groups[0].anchorY)
	require.Len(t, groups[0].fragments, 2)
	assert.Equal(t, "between", groups[0].fragments[1].Content)
	assert.Len(t, groups[1].fragments, 1)
}

func TestAnchorNeverShifts(t *testing.T) {
	// y=98.5 joins the y=100 group but does not move its anchor, so y=97
	// stays out even though it is within tolerance of 98.5.
	groups := clusterRows([]pdf.TextFragment{
		frag("a", 0, 100),
		frag("b", 0, 98.5),
		frag("c", 0, 97),
	}, 2.0, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, 100.0, groups[0].anchorY)
	assert.Len(t, groups[0].fragments, 2)
	assert.Equal(t, 97.0, groups[1].anchorY)
}

func TestRowAndFragmentOrdering(t *testing.T) {
	// Shuffled input: rows come out top to bottom, fragments left to right.
	groups := clusterRows([]pdf.TextFragment{
		frag("low-right", 50, 20),
		frag("high-right", 50, 100),
		frag("low-left", 0, 20),
		frag("high-left", 0, 100),
	}, 2.0, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, "high-left", groups[0].fragments[0].Content)
	assert.Equal(t, "high-right", groups[0].fragments[1].Content)
	assert.Equal(t, "low-left", groups[1].fragments[0].Content)
	assert.Equal(t, "low-right", groups[1].fragments[1].Content)
}

func TestEmptyContentFragmentIsKept(t *testing.T) {
	// Degenerate empty strings are clustered like any other fragment, not
	// rejected.
	groups := clusterRows([]pdf.TextFragment{
		frag("", 0, 100),
		frag("x", 10, 100),
	}, 2.0, nil)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].fragments, 2)
}
