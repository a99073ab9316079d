// Package session holds the state shared between file selection and
// analysis: the most recently extracted text and the analyze trigger status.
package session

import (
	"context"
	"sync"

	"github.com/fwojciec/callscore"
)

// Alert messages shown by the session.
const (
	MsgNoFile         = "Please upload a file first!"
	MsgReadFailed     = "Could not read file"
	MsgAnalysisFailed = "Analysis failed"
)

// Session mediates between the extractor, the analyzer and the display.
// It is safe for concurrent use. The lock is never held while extracting
// or waiting on the analysis service, but it is held across
// Display.StatusChanged, so a Display must not call back into the Session.
type Session struct {
	extractor callscore.Extractor
	analyzer  callscore.Analyzer
	display   callscore.Display

	mu     sync.Mutex
	name   string
	text   string
	status callscore.UiStatus
}

// New creates an idle session with no text.
func New(extractor callscore.Extractor, analyzer callscore.Analyzer, display callscore.Display) *Session {
	return &Session{
		extractor: extractor,
		analyzer:  analyzer,
		display:   display,
	}
}

// Text returns the current extracted text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// FileName returns the name of the file the current text came from.
func (s *Session) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Status returns the current trigger status.
func (s *Session) Status() callscore.UiStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SelectFile extracts the document's text and makes it the current text.
// On failure the previous text is kept and the display is alerted.
func (s *Session) SelectFile(ctx context.Context, doc *callscore.Document) error {
	text, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		s.display.Alert(MsgReadFailed + ": " + callscore.ErrorMessage(err))
		return err
	}

	s.mu.Lock()
	s.name = doc.Name
	s.text = text
	s.mu.Unlock()

	s.display.FileLoaded(doc.Name)
	return nil
}

// Analyze submits the current text and renders the result. The status
// always ends at Idle, whatever the outcome.
func (s *Session) Analyze(ctx context.Context) (*callscore.Report, error) {
	s.mu.Lock()
	if s.text == "" {
		s.mu.Unlock()
		s.display.Alert(MsgNoFile)
		return nil, callscore.Errorf(callscore.EINVALID, MsgNoFile)
	}
	if s.status == callscore.StatusLoading {
		s.mu.Unlock()
		return nil, callscore.Errorf(callscore.ECONFLICT, "analysis already in progress")
	}
	text := s.text
	s.setStatusLocked(callscore.StatusLoading)
	s.mu.Unlock()

	defer s.setStatus(callscore.StatusIdle)

	result, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		s.setStatus(callscore.StatusError)
		s.display.Alert(MsgAnalysisFailed + ": " + callscore.ErrorMessage(err))
		return nil, err
	}

	s.setStatus(callscore.StatusDone)
	report := callscore.RenderReport(result)
	s.display.ShowReport(report)
	return report, nil
}

func (s *Session) setStatus(status callscore.UiStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStatusLocked(status)
}

// setStatusLocked records the status and notifies the display in the same
// critical section, so displays see transitions in the order they happened.
// s.mu must be held.
func (s *Session) setStatusLocked(status callscore.UiStatus) {
	s.status = status
	s.display.StatusChanged(status)
}
