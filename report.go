package callscore

import (
	"bytes"
	"encoding/json"
)

// Placeholder is displayed for any field the analysis did not provide.
const Placeholder = "N/A"

// NoRedFlags is the service's sentinel for an empty red-flag list.
const NoRedFlags = "None detected"

// Insight caps per section.
const (
	MaxRevenueHighlights     = 3
	MaxProfitabilityConcerns = 2
	MaxManagementSignals     = 3
)

// Tier is the severity classification used to color-code scores.
type Tier string

// Tier constants.
const (
	TierPositive Tier = "positive"
	TierNeutral  Tier = "neutral"
	TierNegative Tier = "negative"
)

// ClassifyScore maps a score to a tier: 7 and above is positive, 5 up to 7
// is neutral, anything else is negative. Missing and non-numeric scores are
// negative.
func ClassifyScore(s *Score) Tier {
	switch {
	case s == nil || !s.Numeric:
		return TierNegative
	case s.Value >= 7:
		return TierPositive
	case s.Value >= 5:
		return TierNeutral
	default:
		return TierNegative
	}
}

// BlockKind identifies a display block type.
type BlockKind string

// BlockKind constants.
const (
	BlockInvalid     BlockKind = "invalid"
	BlockHeader      BlockKind = "header"
	BlockAgents      BlockKind = "agents"
	BlockInsights    BlockKind = "insights"
	BlockRedFlags    BlockKind = "red_flags"
	BlockAffirmation BlockKind = "affirmation"
)

// Block is one unit of a rendered report.
type Block interface {
	Kind() BlockKind
}

// InvalidBlock is emitted instead of a report when the result lacks its
// required top-level sections. Dump is the pretty-printed raw payload.
type InvalidBlock struct {
	Dump string
}

// HeaderBlock summarizes the consensus.
type HeaderBlock struct {
	Score          string
	Verdict        string
	Confidence     string
	Recommendation string
}

// AgentCard is one agent's score and verdict.
type AgentCard struct {
	Title   string
	Score   string
	Verdict string
	Tier    Tier
}

// AgentBreakdownBlock holds one card per agent in fixed order.
type AgentBreakdownBlock struct {
	Cards []AgentCard
}

// InsightKind identifies an insights section.
type InsightKind string

// InsightKind constants.
const (
	InsightRevenueHighlights     InsightKind = "revenue_highlights"
	InsightProfitabilityConcerns InsightKind = "profitability_concerns"
	InsightManagementSignals     InsightKind = "management_signals"
)

// InsightSection is a titled, truncated list taken from one agent finding.
type InsightSection struct {
	Kind  InsightKind
	Title string
	Items []string
}

// InsightsBlock groups the non-empty insight sections.
type InsightsBlock struct {
	Sections []InsightSection
}

// RedFlagsBlock lists every red flag in order.
type RedFlagsBlock struct {
	Flags []string
}

// AffirmationBlock states that no red flags were found.
type AffirmationBlock struct {
	Message string
}

func (InvalidBlock) Kind() BlockKind        { return BlockInvalid }
func (HeaderBlock) Kind() BlockKind         { return BlockHeader }
func (AgentBreakdownBlock) Kind() BlockKind { return BlockAgents }
func (InsightsBlock) Kind() BlockKind       { return BlockInsights }
func (RedFlagsBlock) Kind() BlockKind       { return BlockRedFlags }
func (AffirmationBlock) Kind() BlockKind    { return BlockAffirmation }

// Report is an ordered sequence of display blocks.
type Report struct {
	Blocks []Block
}

// Valid reports whether the report was rendered from a well-formed result.
func (r *Report) Valid() bool {
	if r == nil || len(r.Blocks) == 0 {
		return false
	}
	_, invalid := r.Blocks[0].(InvalidBlock)
	return !invalid
}

// Presenter converts a report into output for a display surface.
type Presenter interface {
	Present(r *Report) (string, error)
}

// RenderReport maps an analysis result to display blocks. It never fails:
// a result without consensus or detailed analysis yields a single
// InvalidBlock, and every missing field is replaced by Placeholder.
func RenderReport(result *AnalysisResult) *Report {
	if result == nil || result.Consensus == nil || result.DetailedAnalysis == nil {
		return &Report{Blocks: []Block{InvalidBlock{Dump: dumpRaw(result)}}}
	}

	c := result.Consensus
	d := result.DetailedAnalysis

	return &Report{Blocks: []Block{
		HeaderBlock{
			Score:          orPlaceholder(c.OverallScore.String()),
			Verdict:        orPlaceholder(c.Verdict),
			Confidence:     orPlaceholder(c.Confidence),
			Recommendation: orPlaceholder(c.Recommendation),
		},
		AgentBreakdownBlock{Cards: []AgentCard{
			agentCard("Revenue", d.Revenue),
			agentCard("Profitability", d.Profitability),
			agentCard("Management", d.Management),
		}},
		renderInsights(d),
		renderRedFlags(c.RedFlags),
	}}
}

func agentCard(title string, f *AgentFinding) AgentCard {
	if f == nil {
		f = &AgentFinding{}
	}
	return AgentCard{
		Title:   title,
		Score:   orPlaceholder(f.Score.String()),
		Verdict: orPlaceholder(f.Verdict),
		Tier:    ClassifyScore(f.Score),
	}
}

func renderInsights(d *DetailedAnalysis) InsightsBlock {
	var b InsightsBlock
	if d.Revenue != nil && len(d.Revenue.Highlights) > 0 {
		b.Sections = append(b.Sections, InsightSection{
			Kind:  InsightRevenueHighlights,
			Title: "Revenue Highlights",
			Items: head(d.Revenue.Highlights, MaxRevenueHighlights),
		})
	}
	if d.Profitability != nil && len(d.Profitability.Concerns) > 0 {
		b.Sections = append(b.Sections, InsightSection{
			Kind:  InsightProfitabilityConcerns,
			Title: "Profitability Concerns",
			Items: head(d.Profitability.Concerns, MaxProfitabilityConcerns),
		})
	}
	if d.Management != nil && len(d.Management.PositiveSignals) > 0 {
		b.Sections = append(b.Sections, InsightSection{
			Kind:  InsightManagementSignals,
			Title: "Management Signals",
			Items: head(d.Management.PositiveSignals, MaxManagementSignals),
		})
	}
	return b
}

func renderRedFlags(flags []string) Block {
	if len(flags) == 0 || (len(flags) == 1 && flags[0] == NoRedFlags) {
		return AffirmationBlock{Message: "No Red Flags Detected"}
	}
	return RedFlagsBlock{Flags: append([]string(nil), flags...)}
}

// head returns a copy of at most n leading items.
func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string(nil), items...)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func dumpRaw(result *AnalysisResult) string {
	if result == nil || len(result.Raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, result.Raw, "", "  "); err != nil {
		return string(result.Raw)
	}
	return buf.String()
}
