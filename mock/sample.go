package mock

import (
	"context"

	"github.com/fwojciec/callscore"
)

var _ callscore.SampleService = (*SampleService)(nil)

// SampleService is a mock implementation of callscore.SampleService.
type SampleService struct {
	SamplesFn func(ctx context.Context) ([]*callscore.SampleSummary, error)
	SampleFn  func(ctx context.Context, key string) (*callscore.AnalysisResult, error)
}

func (s *SampleService) Samples(ctx context.Context) ([]*callscore.SampleSummary, error) {
	return s.SamplesFn(ctx)
}

func (s *SampleService) Sample(ctx context.Context, key string) (*callscore.AnalysisResult, error) {
	return s.SampleFn(ctx, key)
}

var _ callscore.HealthChecker = (*HealthChecker)(nil)

// HealthChecker is a mock implementation of callscore.HealthChecker.
type HealthChecker struct {
	HealthFn func(ctx context.Context) (*callscore.Health, error)
}

func (h *HealthChecker) Health(ctx context.Context) (*callscore.Health, error) {
	return h.HealthFn(ctx)
}
