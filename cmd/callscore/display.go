package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/callscore"
)

// Ensure TerminalDisplay implements callscore.Display at compile time.
var _ callscore.Display = (*TerminalDisplay)(nil)

// TerminalDisplay writes reports to Stdout and progress and alerts to
// Stderr.
type TerminalDisplay struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Presenter callscore.Presenter
}

func (d *TerminalDisplay) FileLoaded(name string) {
	fmt.Fprintf(d.Stderr, "File loaded: %s\n", name)
}

func (d *TerminalDisplay) StatusChanged(status callscore.UiStatus) {
	if status == callscore.StatusLoading {
		fmt.Fprintln(d.Stderr, status.TriggerLabel())
	}
}

func (d *TerminalDisplay) ShowReport(r *callscore.Report) {
	out, err := d.Presenter.Present(r)
	if err != nil {
		d.Alert("cannot present report: " + callscore.ErrorMessage(err))
		return
	}
	fmt.Fprintln(d.Stdout, out)
}

func (d *TerminalDisplay) Alert(message string) {
	fmt.Fprintf(d.Stderr, "error: %s\n", message)
}
