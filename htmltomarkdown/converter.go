// Package htmltomarkdown converts HTML to Markdown with html-to-markdown and
// uses it to present reports as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/callscore"
)

// Ensure Converter implements callscore.Converter at compile time.
var _ callscore.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", callscore.Errorf(callscore.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", callscore.Wrap(callscore.EINTERNAL, err)
	}

	return result, nil
}

// Ensure Presenter implements callscore.Presenter at compile time.
var _ callscore.Presenter = (*Presenter)(nil)

// Presenter renders a report through an HTML presenter and converts the
// result to Markdown.
type Presenter struct {
	html callscore.Presenter
	conv callscore.Converter
}

// NewPresenter creates a Markdown presenter from an HTML presenter and a
// converter.
func NewPresenter(html callscore.Presenter, conv callscore.Converter) *Presenter {
	return &Presenter{html: html, conv: conv}
}

// Present returns the report as Markdown.
func (p *Presenter) Present(r *callscore.Report) (string, error) {
	out, err := p.html.Present(r)
	if err != nil {
		return "", err
	}
	return p.conv.Convert(out)
}
