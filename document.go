package callscore

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"
)

// DocumentKind identifies how a document's bytes are turned into text.
type DocumentKind string

// DocumentKind constants.
const (
	KindPlainText DocumentKind = "text"
	KindPDF       DocumentKind = "pdf"
)

// Document is a single user-selected file. It is immutable once created and
// is discarded after extraction.
type Document struct {
	Kind DocumentKind `json:"kind"`
	Name string       `json:"name"`
	Data []byte       `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	return nil
}

// NewDocument creates a Document, detecting its kind from the name,
// the declared content type and the leading bytes.
func NewDocument(name, contentType string, data []byte) *Document {
	return &Document{
		Kind: DetectKind(name, contentType, data),
		Name: name,
		Data: data,
	}
}

var pdfMagic = []byte("%PDF-")

// DetectKind returns KindPDF when the content type is application/pdf, the
// file extension is .pdf, or the data starts with the PDF header.
// Everything else is treated as plain text.
func DetectKind(name, contentType string, data []byte) DocumentKind {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil && mt == "application/pdf" {
			return KindPDF
		}
	}
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return KindPDF
	}
	if bytes.HasPrefix(data, pdfMagic) {
		return KindPDF
	}
	return KindPlainText
}
