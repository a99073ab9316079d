package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/callscore"
)

// Ensure LoggingAnalyzer implements callscore.Analyzer.
var _ callscore.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging. Shape problems attached
// to a result are logged as warnings, one per problem.
type LoggingAnalyzer struct {
	next   callscore.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next callscore.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, text string) (result *callscore.AnalysisResult, err error) {
	defer func(begin time.Time) {
		var requestID string
		var problems []string
		if result != nil {
			requestID, problems = result.RequestID, result.Problems
		}
		for _, p := range problems {
			a.logger.Warn("unexpected response shape", "request_id", requestID, "problem", p)
		}
		a.logger.Info("analyze",
			"chars", len(text),
			"hash", Fingerprint(text),
			"request_id", requestID,
			"problems", len(problems),
			"code", callscore.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, text)
}
