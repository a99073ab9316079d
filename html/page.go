package html

import (
	"strings"

	"github.com/fwojciec/callscore"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Presenter implements callscore.PagePresenter at compile time.
var _ callscore.PagePresenter = (*Presenter)(nil)

// PageTitle is the document title of the analyzer page.
const PageTitle = "Earnings Call Analyzer"

// Page renders the analyzer page: an upload form, the file-loaded panel,
// the analyze trigger, any alert and the report panel.
func (p *Presenter) Page(v callscore.ViewState) (string, error) {
	upload := element(atom.Form, "upload")
	upload.Attr = append(upload.Attr,
		html.Attribute{Key: "method", Val: "post"},
		html.Attribute{Key: "action", Val: "/upload"},
		html.Attribute{Key: "enctype", Val: "multipart/form-data"},
	)
	input := element(atom.Input, "")
	input.Attr = append(input.Attr,
		html.Attribute{Key: "type", Val: "file"},
		html.Attribute{Key: "name", Val: "file"},
		html.Attribute{Key: "accept", Val: ".txt,.pdf"},
	)
	upload.AppendChild(input)
	upload.AppendChild(withText(button("submit", true), "Upload"))

	fileStatus := element(atom.Div, "file-status")
	if v.FileName != "" {
		fileStatus.AppendChild(withText(element(atom.P, ""), "Loaded: "+v.FileName))
	}

	analyze := element(atom.Form, "analyze")
	analyze.Attr = append(analyze.Attr,
		html.Attribute{Key: "method", Val: "post"},
		html.Attribute{Key: "action", Val: "/analyze"},
	)
	analyze.AppendChild(withText(button("submit", v.Status.TriggerEnabled()), v.Status.TriggerLabel()))

	body := element(atom.Body, "status-"+v.Status.String(),
		withText(element(atom.H1, ""), PageTitle),
		upload,
		fileStatus,
		analyze,
	)
	if v.Alert != "" {
		alert := withText(element(atom.Div, "alert"), v.Alert)
		alert.Attr = append(alert.Attr, html.Attribute{Key: "role", Val: "alert"})
		body.AppendChild(alert)
	}
	results := element(atom.Div, "results")
	if v.Report != nil {
		results.AppendChild(p.Node(v.Report))
	}
	body.AppendChild(results)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, "",
		element(atom.Head, "",
			withText(element(atom.Title, ""), PageTitle),
		),
		body,
	))

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", callscore.Wrap(callscore.EINTERNAL, err)
	}
	return sb.String(), nil
}

func button(typ string, enabled bool) *html.Node {
	b := element(atom.Button, "")
	b.Attr = append(b.Attr, html.Attribute{Key: "type", Val: typ})
	if !enabled {
		b.Attr = append(b.Attr, html.Attribute{Key: "disabled"})
	}
	return b
}
