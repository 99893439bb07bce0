package pdf

import (
	"time"
)

// TextFragment is one positioned run of text on a page. Coordinates are in
// the page's own space with y increasing upward (PDF convention); Width and
// Height are the bounding box extents and may be zero.
type TextFragment struct {
	Content  string  `json:"content"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontName string  `json:"font_name"`
	FontSize float64 `json:"font_size,omitempty"`
}

// PageLayout is one page's fragments plus page metadata. PageNumber is
// 1-based and taken from the source document, not recomputed.
type PageLayout struct {
	PageNumber int            `json:"page_number"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Fragments  []TextFragment `json:"fragments"`
}

// Metadata holds the document information dictionary. Absent entries are
// zero values; dates are zero time.Time when missing or unparseable.
type Metadata struct {
	Title        string    `json:"title,omitempty"`
	Author       string    `json:"author,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Keywords     string    `json:"keywords,omitempty"`
	Creator      string    `json:"creator,omitempty"`
	Producer     string    `json:"producer,omitempty"`
	CreationDate time.Time `json:"creation_date,omitzero"`
	ModDate      time.Time `json:"mod_date,omitzero"`
}

// PageDimension is the media box extent of a single page, as reported by
// Inspect.
type PageDimension struct {
	Width  float64
	Height float64
}

// DocumentInfo is the pre-flight summary produced by Inspect.
type DocumentInfo struct {
	PageCount int
	Pages     []PageDimension
}
