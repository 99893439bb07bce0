package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Inspect validates a PDF with pdfcpu and reports its page count and page
// dimensions without extracting any text. Useful as a cheap pre-flight check
// before running the full fragment collection.
func Inspect(filepath string) (DocumentInfo, error) {
	ctx, err := api.ReadContextFile(filepath)
	if err != nil {
		return DocumentInfo{}, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return DocumentInfo{}, fmt.Errorf("invalid PDF: %w", err)
	}

	info := DocumentInfo{
		PageCount: ctx.PageCount,
		Pages:     make([]PageDimension, 0, ctx.PageCount),
	}

	for i := 1; i <= ctx.PageCount; i++ {
		width := defaultPageWidth
		height := defaultPageHeight

		_, _, attrs, err := ctx.PageDict(i, false)
		if err != nil {
			return DocumentInfo{}, fmt.Errorf("failed to get page dict for page %d: %w", i, err)
		}
		if attrs != nil && attrs.MediaBox != nil {
			width = attrs.MediaBox.Width()
			height = attrs.MediaBox.Height()
		}

		info.Pages = append(info.Pages, PageDimension{Width: width, Height: height})
	}

	return info, nil
}
