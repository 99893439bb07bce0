package layout

import (
	"bytes"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textops/pdfgrid/pkg/pdf"
)

func TestExtractFlatByDefault(t *testing.T) {
	result, err := Extract([]pdf.PageLayout{
		page(1, frag("Hello, ", 0, 100), frag("world", 30, 100)),
	}, pdf.Metadata{})
	require.NoError(t, err)

	flat, ok := result.(FlatText)
	require.True(t, ok)
	assert.Equal(t, "Hello, world", string(flat))
}

func TestExtractStructured(t *testing.T) {
	meta := pdf.Metadata{Title: "Report", Producer: "testsuite"}
	pages := []pdf.PageLayout{
		page(1, frag("Name", 0, 100), frag("Age", 40, 100)),
		page(2, frag("Bob", 0, 100)),
	}

	result, err := Extract(pages, meta, WithLayout(true))
	require.NoError(t, err)

	structured, ok := result.(*StructuredResult)
	require.True(t, ok)
	assert.Equal(t, "NameAge\n\nBob", structured.Text)
	assert.Contains(t, structured.Layout, "Name      Age")
	assert.Contains(t, structured.Layout, "Page 2")
	assert.Equal(t, meta, structured.Metadata)
	assert.Equal(t, 2, structured.PageCount)
	assert.Equal(t, 3, structured.FragmentCount)
	assert.Len(t, structured.Pages, 2)
}

func TestExtractZeroPages(t *testing.T) {
	result, err := Extract(nil, pdf.Metadata{})
	require.NoError(t, err)
	assert.Equal(t, FlatText(""), result)

	result, err = Extract(nil, pdf.Metadata{}, WithLayout(true))
	require.NoError(t, err)
	structured := result.(*StructuredResult)
	assert.Equal(t, "", structured.Text)
	assert.Equal(t, "", structured.Layout)
	assert.Equal(t, 0, structured.PageCount)
	assert.Equal(t, 0, structured.FragmentCount)
}

func TestExtractRejectsInvalidOptions(t *testing.T) {
	_, err := Extract(nil, pdf.Metadata{}, WithYTolerance(-2))
	assert.Error(t, err)
}

func TestExtractRejectsNonFiniteCoordinates(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Extract([]pdf.PageLayout{
			page(1, frag("ok", 0, 100), frag("bad", bad, 100)),
		}, pdf.Metadata{})
		assert.Error(t, err)

		_, err = Extract([]pdf.PageLayout{
			page(1, frag("bad", 0, bad)),
		}, pdf.Metadata{})
		assert.Error(t, err)
	}
}

func TestFlattenTextSkipsEmptyPages(t *testing.T) {
	flat := FlattenText([]pdf.PageLayout{
		page(1, frag("first", 0, 100)),
		page(2),
		page(3, frag("third", 0, 100)),
	})
	assert.Equal(t, "first\n\nthird", flat)
}

func TestDebugNeutrality(t *testing.T) {
	pages := []pdf.PageLayout{
		page(1,
			frag("alpha", 0, 100),
			frag("beta", 40, 100),
			frag("gamma", 0, 80),
		),
	}

	quiet, err := Extract(pages, pdf.Metadata{}, WithLayout(true))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	loud, err := Extract(pages, pdf.Metadata{}, WithLayout(true), WithDebugLogger(log))
	require.NoError(t, err)

	// Diagnostics go to the side channel and never alter the result.
	assert.Equal(t, quiet, loud)
	assert.Contains(t, buf.String(), "assigned fragment to row")
	assert.Contains(t, buf.String(), "alpha")
}

func TestDebugRecordsProcessingOrder(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	// One record per fragment, carrying the size of the row it joined.
	_, err := Extract([]pdf.PageLayout{
		page(1, frag("a", 0, 100), frag("b", 40, 100.5)),
	}, pdf.Metadata{}, WithLayout(true), WithDebugLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("assigned fragment to row")))
	assert.Contains(t, out, "row_size=1")
	assert.Contains(t, out, "row_size=2")
	assert.Contains(t, out, "y=100.50")
}
