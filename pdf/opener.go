// Package pdf implements callscore.PDFOpener using ledongthuc/pdf,
// a pure Go PDF reader.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fwojciec/callscore"
	"github.com/ledongthuc/pdf"
)

// Ensure Opener implements callscore.PDFOpener at compile time.
var _ callscore.PDFOpener = (*Opener)(nil)

// Opener opens PDF byte buffers.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open parses the PDF cross-reference structure. Page content is decoded
// lazily by PageText.
func (o *Opener) Open(data []byte) (doc callscore.PagedDocument, err error) {
	if len(data) == 0 {
		return nil, callscore.Errorf(callscore.EINVALID, "empty PDF input")
	}

	// The reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("open pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Document{r: r}, nil
}

// Document is an opened PDF.
type Document struct {
	r *pdf.Reader
}

// NumPages returns the page count declared by the page tree.
func (d *Document) NumPages() int {
	return d.r.NumPage()
}

// PageText returns the text runs of a page, top row first and left to right
// within a row.
func (d *Document) PageText(ctx context.Context, n int) (fragments []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 1 || n > d.r.NumPage() {
		return nil, callscore.Errorf(callscore.EINVALID, "page %d out of range", n)
	}

	defer func() {
		if r := recover(); r != nil {
			fragments, err = nil, fmt.Errorf("page %d: %v", n, r)
		}
	}()

	page := d.r.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	for _, row := range rows {
		for _, text := range row.Content {
			if text.S != "" {
				fragments = append(fragments, text.S)
			}
		}
	}
	return fragments, nil
}
