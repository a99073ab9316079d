package callscore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// AnalysisRequest is the body sent to the analysis service.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// AnalysisResult is the analysis service's response.
//
// The service's output is loosely typed, so every nested field is optional.
// A key whose value is not a JSON object is treated as absent; scalar fields
// are zero when missing.
type AnalysisResult struct {
	Consensus        *Consensus
	DetailedAnalysis *DetailedAnalysis

	// Raw is the payload exactly as received.
	Raw json.RawMessage

	// RequestID correlates the result with the request that produced it.
	RequestID string

	// Problems lists deviations from the expected response shape.
	// They are informational and never cause a failure.
	Problems []string
}

// Consensus is the aggregated verdict across all agent findings.
type Consensus struct {
	OverallScore   *Score
	Verdict        string
	Confidence     string
	Recommendation string
	RedFlags       []string
}

// DetailedAnalysis holds the per-agent findings.
type DetailedAnalysis struct {
	Revenue       *AgentFinding
	Profitability *AgentFinding
	Management    *AgentFinding
}

// AgentFinding is one sub-analysis within the detailed analysis.
type AgentFinding struct {
	Score           *Score
	Verdict         string
	Highlights      []string
	Concerns        []string
	PositiveSignals []string
}

// Score is a loosely-typed score. Numeric is false when the service sent
// something that is not a number; Text is what gets displayed either way.
type Score struct {
	Value   float64
	Text    string
	Numeric bool
}

// NewScore returns a numeric score.
func NewScore(v float64) *Score {
	return &Score{Value: v, Text: strconv.FormatFloat(v, 'f', -1, 64), Numeric: true}
}

// String returns the display form of the score.
func (s *Score) String() string {
	if s == nil {
		return ""
	}
	return s.Text
}

// Analyzer submits text to the analysis service.
type Analyzer interface {
	// Analyze sends the text and returns the parsed result.
	// Returns a *ServerError for non-2xx responses, EMALFORMED when the body
	// is not JSON, and ETRANSPORT for network failures.
	Analyze(ctx context.Context, text string) (*AnalysisResult, error)
}

// ShapeChecker reports how a raw payload deviates from the expected
// analysis response shape.
type ShapeChecker interface {
	Check(raw []byte) []string
}

// ParseAnalysisResult decodes a response body. It fails with EMALFORMED only
// when the body is not valid JSON; any valid JSON value yields a result.
func ParseAnalysisResult(data []byte) (*AnalysisResult, error) {
	if !json.Valid(data) {
		return nil, Errorf(EMALFORMED, "analysis response is not valid JSON")
	}
	var r AnalysisResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, Wrap(EMALFORMED, err)
	}
	return &r, nil
}

// UnmarshalJSON decodes any JSON value without failing on unexpected shapes.
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	r.Raw = append(json.RawMessage(nil), data...)
	fields := objectFields(data)
	if raw, ok := fields["consensus"]; ok {
		r.Consensus = decodeConsensus(raw)
	}
	if raw, ok := fields["detailed_analysis"]; ok {
		r.DetailedAnalysis = decodeDetailedAnalysis(raw)
	}
	return nil
}

func decodeConsensus(raw json.RawMessage) *Consensus {
	fields := objectFields(raw)
	if fields == nil {
		return nil
	}
	return &Consensus{
		OverallScore:   decodeScore(fields["overall_score"]),
		Verdict:        decodeText(fields["verdict"]),
		Confidence:     decodeText(fields["confidence"]),
		Recommendation: decodeText(fields["recommendation"]),
		RedFlags:       decodeTextList(fields["red_flags"]),
	}
}

func decodeDetailedAnalysis(raw json.RawMessage) *DetailedAnalysis {
	fields := objectFields(raw)
	if fields == nil {
		return nil
	}
	return &DetailedAnalysis{
		Revenue:       decodeAgentFinding(fields["revenue"]),
		Profitability: decodeAgentFinding(fields["profitability"]),
		Management:    decodeAgentFinding(fields["management"]),
	}
}

func decodeAgentFinding(raw json.RawMessage) *AgentFinding {
	fields := objectFields(raw)
	if fields == nil {
		return nil
	}
	return &AgentFinding{
		Score:           decodeScore(fields["score"]),
		Verdict:         decodeText(fields["verdict"]),
		Highlights:      decodeTextList(fields["highlights"]),
		Concerns:        decodeTextList(fields["concerns"]),
		PositiveSignals: decodeTextList(fields["positive_signals"]),
	}
}

// objectFields returns the members of a JSON object, or nil if raw is not one.
func objectFields(raw json.RawMessage) map[string]json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields
}

func decodeScore(raw json.RawMessage) *Score {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if v, ok := parseNumber(s); ok {
			return &Score{Value: v, Text: s, Numeric: true}
		}
		return &Score{Text: s}
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		v, ok := parseNumber(string(raw))
		if !ok {
			return nil
		}
		if math.IsInf(v, 0) {
			return &Score{Value: v, Text: string(raw), Numeric: true}
		}
		return NewScore(v)
	}
	return nil
}

// parseNumber parses a decimal number. Out-of-range magnitudes keep the
// infinity ParseFloat reports for them.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func decodeText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		return string(raw)
	case bytes.Equal(raw, []byte("true")):
		return "true"
	}
	return ""
}

func decodeTextList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		if s := decodeText(item); s != "" {
			list = append(list, s)
		}
	}
	return list
}
