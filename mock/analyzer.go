package mock

import (
	"context"

	"github.com/fwojciec/callscore"
)

var _ callscore.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of callscore.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, text string) (*callscore.AnalysisResult, error)
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*callscore.AnalysisResult, error) {
	return a.AnalyzeFn(ctx, text)
}

var _ callscore.ShapeChecker = (*ShapeChecker)(nil)

// ShapeChecker is a mock implementation of callscore.ShapeChecker.
type ShapeChecker struct {
	CheckFn func(raw []byte) []string
}

func (c *ShapeChecker) Check(raw []byte) []string {
	return c.CheckFn(raw)
}
