package callscore

import (
	"fmt"
	"strings"
)

// FormatReport formats a report as plain text for a terminal.
// Blocks are separated by blank lines; agent cards are prefixed with a tier
// marker (+ positive, ~ neutral, - negative).
func FormatReport(r *Report) string {
	if r == nil || len(r.Blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(r.Blocks))
	for _, block := range r.Blocks {
		if s := formatBlock(block); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func formatBlock(block Block) string {
	var sb strings.Builder
	switch b := block.(type) {
	case InvalidBlock:
		sb.WriteString("Error: Invalid response structure\n")
		sb.WriteString(b.Dump)
	case HeaderBlock:
		fmt.Fprintf(&sb, "Overall Score: %s/10\n", b.Score)
		fmt.Fprintf(&sb, "Verdict: %s\n", b.Verdict)
		fmt.Fprintf(&sb, "Confidence: %s\n", b.Confidence)
		fmt.Fprintf(&sb, "Recommendation: %s", b.Recommendation)
	case AgentBreakdownBlock:
		sb.WriteString("Agent Breakdown")
		for _, c := range b.Cards {
			fmt.Fprintf(&sb, "\n  [%s] %s: %s/10 - %s", tierMarker(c.Tier), c.Title, c.Score, c.Verdict)
		}
	case InsightsBlock:
		if len(b.Sections) == 0 {
			return ""
		}
		sb.WriteString("Key Insights")
		for _, s := range b.Sections {
			fmt.Fprintf(&sb, "\n  %s", s.Title)
			for _, item := range s.Items {
				fmt.Fprintf(&sb, "\n    - %s", item)
			}
		}
	case RedFlagsBlock:
		sb.WriteString("Red Flags")
		for _, flag := range b.Flags {
			fmt.Fprintf(&sb, "\n  - %s", flag)
		}
	case AffirmationBlock:
		sb.WriteString(b.Message)
	}
	return sb.String()
}

func tierMarker(t Tier) string {
	switch t {
	case TierPositive:
		return "+"
	case TierNeutral:
		return "~"
	default:
		return "-"
	}
}

// Ensure TextPresenter implements Presenter at compile time.
var _ Presenter = TextPresenter{}

// TextPresenter presents reports with FormatReport.
type TextPresenter struct{}

// Present returns the plain-text report.
func (TextPresenter) Present(r *Report) (string, error) {
	return FormatReport(r), nil
}
