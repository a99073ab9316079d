// Package html renders reports as HTML fragments built from
// golang.org/x/net/html nodes. Agent cards carry their tier as a CSS class
// (tier-positive, tier-neutral, tier-negative).
package html

import (
	"strings"

	"github.com/fwojciec/callscore"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Presenter implements callscore.Presenter at compile time.
var _ callscore.Presenter = (*Presenter)(nil)

// Presenter converts reports to HTML.
type Presenter struct{}

// NewPresenter creates a new Presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present renders the report as a single <div class="report"> fragment.
// Text is escaped by the renderer.
func (p *Presenter) Present(r *callscore.Report) (string, error) {
	if r == nil {
		return "", callscore.Errorf(callscore.EINVALID, "report required")
	}

	var sb strings.Builder
	if err := html.Render(&sb, p.Node(r)); err != nil {
		return "", callscore.Wrap(callscore.EINTERNAL, err)
	}
	return sb.String(), nil
}

// Node returns the report as a detached node tree for embedding in a page.
func (p *Presenter) Node(r *callscore.Report) *html.Node {
	root := element(atom.Div, "report")
	if r == nil {
		return root
	}
	for _, block := range r.Blocks {
		if n := blockNode(block); n != nil {
			root.AppendChild(n)
		}
	}
	return root
}

func blockNode(block callscore.Block) *html.Node {
	switch b := block.(type) {
	case callscore.InvalidBlock:
		return element(atom.Section, "invalid",
			withText(element(atom.H2, ""), "Error: Invalid response structure"),
			withText(element(atom.Pre, ""), b.Dump),
		)
	case callscore.HeaderBlock:
		return element(atom.Section, "consensus",
			withText(element(atom.Div, "overall-score"), b.Score+"/10"),
			withText(element(atom.P, "verdict"), "Verdict: "+b.Verdict),
			withText(element(atom.P, "confidence"), "Confidence: "+b.Confidence),
			withText(element(atom.P, "recommendation"), "Recommendation: "+b.Recommendation),
		)
	case callscore.AgentBreakdownBlock:
		section := element(atom.Section, "agents",
			withText(element(atom.H2, ""), "Agent Breakdown"),
		)
		for _, c := range b.Cards {
			section.AppendChild(element(atom.Div, "agent-card tier-"+string(c.Tier),
				withText(element(atom.H3, ""), c.Title),
				withText(element(atom.Div, "score"), c.Score+"/10"),
				withText(element(atom.P, "verdict"), c.Verdict),
			))
		}
		return section
	case callscore.InsightsBlock:
		if len(b.Sections) == 0 {
			return nil
		}
		section := element(atom.Section, "insights",
			withText(element(atom.H2, ""), "Key Insights"),
		)
		for _, s := range b.Sections {
			section.AppendChild(element(atom.Div, "insight "+string(s.Kind),
				withText(element(atom.H3, ""), s.Title),
				list(s.Items),
			))
		}
		return section
	case callscore.RedFlagsBlock:
		return element(atom.Section, "red-flags",
			withText(element(atom.H2, ""), "Red Flags"),
			list(b.Flags),
		)
	case callscore.AffirmationBlock:
		return element(atom.Section, "no-red-flags",
			withText(element(atom.P, ""), b.Message),
		)
	}
	return nil
}

func list(items []string) *html.Node {
	ul := element(atom.Ul, "")
	for _, item := range items {
		ul.AppendChild(withText(element(atom.Li, ""), item))
	}
	return ul
}

func element(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return n
}
