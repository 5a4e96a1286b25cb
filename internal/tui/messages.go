package tui

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ScreenLoadedMsg carries a fetch result for one screen.
// Items holds the screen's []T; Gen discards results from superseded loads.
type ScreenLoadedMsg struct {
	Screen ScreenID
	Gen    int
	Items  any
	Err    error
}

// DeleteResolvedMsg carries the backend result of an optimistic delete.
// Ticket holds the screen's listview.DeleteTicket[T].
type DeleteResolvedMsg struct {
	Screen ScreenID
	Gen    int
	Ticket any
	Err    error
}

// StatusMsg shows a transient status line
type StatusMsg struct {
	Message string
	IsError bool
	IsWarn  bool
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}
