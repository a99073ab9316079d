package mock

import "github.com/fwojciec/callscore"

var _ callscore.Converter = (*Converter)(nil)

// Converter is a mock implementation of callscore.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ callscore.Presenter = (*Presenter)(nil)

// Presenter is a mock implementation of callscore.Presenter.
type Presenter struct {
	PresentFn func(r *callscore.Report) (string, error)
}

func (p *Presenter) Present(r *callscore.Report) (string, error) {
	return p.PresentFn(r)
}
