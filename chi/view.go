package chi

import (
	"sync"

	"github.com/fwojciec/callscore"
)

// Ensure View implements callscore.Display at compile time.
var _ callscore.Display = (*View)(nil)

// View is a callscore.Display that keeps the latest state so it can be
// served to any number of browsers.
type View struct {
	mu    sync.Mutex
	state callscore.ViewState
}

// NewView creates an empty idle view.
func NewView() *View {
	return &View{}
}

// State returns a snapshot of the view.
func (v *View) State() callscore.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) FileLoaded(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.FileName = name
	v.state.Alert = ""
}

// StatusChanged records the status. Entering Loading clears the previous
// report and alert.
func (v *View) StatusChanged(status callscore.UiStatus) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Status = status
	if status == callscore.StatusLoading {
		v.state.Report = nil
		v.state.Alert = ""
	}
}

func (v *View) ShowReport(r *callscore.Report) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Report = r
}

func (v *View) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Alert = message
}
