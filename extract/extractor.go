// Package extract converts uploaded documents into a single text payload.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/callscore"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ensure Extractor implements callscore.Extractor at compile time.
var _ callscore.Extractor = (*Extractor)(nil)

// Extractor dispatches on the document kind. PDFs are read page by page
// through a callscore.PDFOpener; everything else is decoded as text.
type Extractor struct {
	pdf callscore.PDFOpener
}

// NewExtractor creates a new Extractor.
func NewExtractor(pdf callscore.PDFOpener) *Extractor {
	return &Extractor{pdf: pdf}
}

// Extract returns the document's text. Any failure aborts the whole
// extraction; no partial text is returned.
func (e *Extractor) Extract(ctx context.Context, doc *callscore.Document) (string, error) {
	if doc == nil {
		return "", callscore.Errorf(callscore.EINVALID, "document required")
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}

	switch doc.Kind {
	case callscore.KindPDF:
		return e.extractPDF(ctx, doc)
	default:
		return DecodeText(doc.Data)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, doc *callscore.Document) (string, error) {
	if e.pdf == nil {
		return "", callscore.Errorf(callscore.EEXTRACT, "PDF support not configured")
	}

	paged, err := e.pdf.Open(doc.Data)
	if err != nil {
		return "", &callscore.Error{
			Code:    callscore.EEXTRACT,
			Message: fmt.Sprintf("cannot open %s: %v", doc.Name, err),
			Err:     err,
		}
	}

	var sb strings.Builder
	for i := 1; i <= paged.NumPages(); i++ {
		if err := ctx.Err(); err != nil {
			return "", callscore.Wrap(callscore.EEXTRACT, err)
		}
		fragments, err := paged.PageText(ctx, i)
		if err != nil {
			return "", &callscore.Error{
				Code:    callscore.EEXTRACT,
				Message: fmt.Sprintf("cannot read page %d of %s: %v", i, doc.Name, err),
				Err:     err,
			}
		}
		sb.WriteString(strings.Join(fragments, " "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// DecodeText decodes raw bytes as UTF-8 text. A leading byte order mark
// selects UTF-8 or UTF-16 and is removed; invalid sequences become U+FFFD.
// Valid UTF-8 without a BOM is returned unchanged.
func DecodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", callscore.Wrap(callscore.EEXTRACT, err)
	}
	return string(out), nil
}
