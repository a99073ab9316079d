package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/callscore"
)

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	h, err := deps.Health.Health(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "status: %s\n", h.Status)
	names := make([]string, 0, len(h.Components))
	for name := range h.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(deps.Stdout, "  %s: %s\n", name, h.Components[name])
	}
	return nil
}

// Run executes the samples command.
func (c *SamplesCmd) Run(deps *Dependencies) error {
	samples, err := deps.Samples.Samples(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	if len(samples) == 0 {
		fmt.Fprintln(deps.Stdout, "No samples available.")
		return nil
	}

	for _, s := range samples {
		if s == nil {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s/10\n", s.Key, orPlaceholder(s.Company), orPlaceholder(s.OverallScore.String()))
	}
	return nil
}

// Run executes the sample command.
func (c *SampleCmd) Run(deps *Dependencies) error {
	presenter, err := NewPresenter(deps.Config.Override("", 0, c.Format, "").Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	result, err := deps.Samples.Sample(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	out, err := presenter.Present(callscore.RenderReport(result))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return callscore.Placeholder
	}
	return s
}
