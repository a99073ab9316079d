package callscore

import "context"

// Extractor turns an uploaded document into a single text payload.
type Extractor interface {
	// Extract returns the document's text. PDF pages are emitted in page
	// order, each page's fragments joined by a single space and terminated
	// by a newline. Any other kind is decoded as text and returned verbatim.
	// Returns EEXTRACT if the document cannot be read; no partial text is
	// returned.
	Extract(ctx context.Context, doc *Document) (string, error)
}

// PDFOpener opens raw bytes as a paged document.
type PDFOpener interface {
	Open(data []byte) (PagedDocument, error)
}

// PagedDocument exposes the text of a paged document one page at a time.
type PagedDocument interface {
	// NumPages returns the number of pages.
	NumPages() int

	// PageText returns the ordered text fragments of the page.
	// Pages are numbered from 1.
	PageText(ctx context.Context, page int) ([]string, error)
}
