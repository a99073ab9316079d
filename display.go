package callscore

// Display receives the session's user-visible updates.
type Display interface {
	// FileLoaded confirms that a file was read and its text stored.
	FileLoaded(name string)

	// StatusChanged reports a UiStatus transition. Implementations derive
	// the trigger's label and enabled flag from it.
	StatusChanged(status UiStatus)

	// ShowReport replaces the report panel.
	ShowReport(r *Report)

	// Alert surfaces a message the user must see.
	Alert(message string)
}

// ViewState is a snapshot of everything a display surface shows.
type ViewState struct {
	FileName string
	Status   UiStatus
	Report   *Report
	Alert    string
}

// PagePresenter renders a full page for a display surface.
type PagePresenter interface {
	Presenter
	Page(v ViewState) (string, error)
}
