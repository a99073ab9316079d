package mock

import (
	"sync"

	"github.com/fwojciec/callscore"
)

var _ callscore.Display = (*Display)(nil)

// Display is a mock implementation of callscore.Display.
// Nil function fields are skipped.
type Display struct {
	FileLoadedFn    func(name string)
	StatusChangedFn func(status callscore.UiStatus)
	ShowReportFn    func(r *callscore.Report)
	AlertFn         func(message string)
}

func (d *Display) FileLoaded(name string) {
	if d.FileLoadedFn != nil {
		d.FileLoadedFn(name)
	}
}

func (d *Display) StatusChanged(status callscore.UiStatus) {
	if d.StatusChangedFn != nil {
		d.StatusChangedFn(status)
	}
}

func (d *Display) ShowReport(r *callscore.Report) {
	if d.ShowReportFn != nil {
		d.ShowReportFn(r)
	}
}

func (d *Display) Alert(message string) {
	if d.AlertFn != nil {
		d.AlertFn(message)
	}
}

// RecordingDisplay records every update it receives.
type RecordingDisplay struct {
	mu       sync.Mutex
	Files    []string
	Statuses []callscore.UiStatus
	Reports  []*callscore.Report
	Alerts   []string
}

var _ callscore.Display = (*RecordingDisplay)(nil)

func (d *RecordingDisplay) FileLoaded(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Files = append(d.Files, name)
}

func (d *RecordingDisplay) StatusChanged(status callscore.UiStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Statuses = append(d.Statuses, status)
}

func (d *RecordingDisplay) ShowReport(r *callscore.Report) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Reports = append(d.Reports, r)
}

func (d *RecordingDisplay) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Alerts = append(d.Alerts, message)
}
