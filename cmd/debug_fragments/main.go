package main

import (
	"fmt"
	"log"
	"os"

	"github.com/textops/pdfgrid"
)

// Dumps every positioned fragment of a PDF, page by page. Developer tool for
// checking what the collector feeds the layout reconstructor.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug_fragments <pdf_file>")
		os.Exit(1)
	}

	doc, err := pdfgrid.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	fmt.Printf("Document has %d pages\n", doc.PageCount())

	meta := doc.Metadata()
	if meta.Title != "" {
		fmt.Printf("Title: %s\n", meta.Title)
	}
	if meta.Producer != "" {
		fmt.Printf("Producer: %s\n", meta.Producer)
	}

	for _, page := range doc.Pages() {
		fmt.Printf("\n=== Page %d (%.2f x %.2f, %d fragments) ===\n",
			page.PageNumber, page.Width, page.Height, len(page.Fragments))

		for _, frag := range page.Fragments {
			fmt.Printf("  %-30q at (%.2f, %.2f) w=%.2f font=%s size=%.1f\n",
				frag.Content, frag.X, frag.Y, frag.Width, frag.FontName, frag.FontSize)
		}
	}
}
