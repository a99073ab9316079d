package mock

import (
	"context"

	"github.com/fwojciec/callscore"
)

var _ callscore.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of callscore.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, doc *callscore.Document) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, doc *callscore.Document) (string, error) {
	return e.ExtractFn(ctx, doc)
}

var _ callscore.PDFOpener = (*PDFOpener)(nil)

// PDFOpener is a mock implementation of callscore.PDFOpener.
type PDFOpener struct {
	OpenFn func(data []byte) (callscore.PagedDocument, error)
}

func (o *PDFOpener) Open(data []byte) (callscore.PagedDocument, error) {
	return o.OpenFn(data)
}

var _ callscore.PagedDocument = (*PagedDocument)(nil)

// PagedDocument is a mock implementation of callscore.PagedDocument.
type PagedDocument struct {
	NumPagesFn func() int
	PageTextFn func(ctx context.Context, page int) ([]string, error)
}

func (d *PagedDocument) NumPages() int {
	return d.NumPagesFn()
}

func (d *PagedDocument) PageText(ctx context.Context, page int) ([]string, error) {
	return d.PageTextFn(ctx, page)
}
