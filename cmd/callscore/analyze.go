package main

import (
	"fmt"

	"github.com/fwojciec/callscore"
	"github.com/fwojciec/callscore/session"
)

// Run executes the analyze command. The session reports progress and
// failures through the terminal display.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	presenter, err := NewPresenter(deps.Config.Override("", 0, c.Format, "").Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	doc, err := readDocument(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	display := &TerminalDisplay{Stdout: deps.Stdout, Stderr: deps.Stderr, Presenter: presenter}
	s := session.New(deps.Extractor, deps.Analyzer, display)

	if err := s.SelectFile(deps.Ctx, doc); err != nil {
		return err
	}
	_, err = s.Analyze(deps.Ctx)
	return err
}
