package callscore

import "context"

// SampleSummary describes a pre-loaded sample analysis offered by the service.
type SampleSummary struct {
	Key          string
	Company      string
	OverallScore *Score
}

// UnmarshalJSON decodes a summary with the same tolerance as analysis
// results: unexpected member types are treated as absent.
func (s *SampleSummary) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*s = SampleSummary{
		Key:          decodeText(fields["key"]),
		Company:      decodeText(fields["company"]),
		OverallScore: decodeScore(fields["overall_score"]),
	}
	return nil
}

// SampleService lists and fetches pre-loaded sample analyses.
type SampleService interface {
	// Samples returns the summaries of all available samples.
	Samples(ctx context.Context) ([]*SampleSummary, error)

	// Sample returns a sample analysis by key.
	// Returns ENOTFOUND if the sample does not exist.
	Sample(ctx context.Context, key string) (*AnalysisResult, error)
}

// Health is the analysis service's self-reported status.
type Health struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// HealthChecker reports whether the analysis service is up.
type HealthChecker interface {
	Health(ctx context.Context) (*Health, error)
}
