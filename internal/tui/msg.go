package tui

import "github.com/okikae/mdtask/internal/usecase"

// docLoadedMsg carries a freshly loaded document snapshot.
type docLoadedMsg struct {
	out *usecase.ListTasksOutput
}

// completeDoneMsg carries the result of a complete operation.
// err is set when the operation or a protocol step failed.
type completeDoneMsg struct {
	out *usecase.CompleteTaskOutput
	err error
}

// errMsg carries an error to display in the status line.
type errMsg struct {
	err error
}
