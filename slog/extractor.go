package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/callscore"
)

// Ensure LoggingExtractor implements callscore.Extractor.
var _ callscore.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. The extracted text is
// logged as a length and an xxhash fingerprint, never verbatim.
type LoggingExtractor struct {
	next   callscore.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next callscore.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, doc *callscore.Document) (text string, err error) {
	defer func(begin time.Time) {
		var name string
		var kind callscore.DocumentKind
		var size int
		if doc != nil {
			name, kind, size = doc.Name, doc.Kind, len(doc.Data)
		}
		e.logger.Info("extract",
			"name", name,
			"kind", kind,
			"bytes", size,
			"chars", len(text),
			"hash", Fingerprint(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, doc)
}

// Fingerprint returns the hex xxhash of text, or "" for empty text.
func Fingerprint(text string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
