package callscore

// UiStatus governs the analyze trigger's label and enabled state.
type UiStatus int

// UiStatus constants.
const (
	StatusIdle UiStatus = iota
	StatusLoading
	StatusError
	StatusDone
)

// Trigger labels.
const (
	TriggerIdleLabel    = "Analyze transcript"
	TriggerLoadingLabel = "Analyzing..."
)

// String returns the status name.
func (s UiStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusDone:
		return "done"
	default:
		return "idle"
	}
}

// TriggerLabel returns the analyze trigger's label for the status.
func (s UiStatus) TriggerLabel() string {
	if s == StatusLoading {
		return TriggerLoadingLabel
	}
	return TriggerIdleLabel
}

// TriggerEnabled reports whether the analyze trigger accepts input.
func (s UiStatus) TriggerEnabled() bool {
	return s != StatusLoading
}
