package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrParentNotFound       = errors.New("parent task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrSubtasksPending      = errors.New("sub-tasks still pending")
	ErrNotLeafTask          = errors.New("task has sub-tasks and cannot be completed directly")
	ErrNoPendingTasks       = errors.New("all tasks completed")
	ErrDocumentNotFound     = errors.New("task document not found (run 'mdtask init' first)")
	ErrDocumentExists       = errors.New("task document already exists")
	ErrApprovalDenied       = errors.New("approval denied")
	ErrDuplicateTaskID      = errors.New("duplicate task id")
	ErrEmptyTitle           = errors.New("title cannot be empty")
	ErrEmptyPath            = errors.New("path cannot be empty")
	ErrNoTestCommand        = errors.New("no test command configured")
)

// Protocol step names reported by ProtocolStepError.
const (
	StepTest    = "test"
	StepStage   = "stage"
	StepCleanup = "cleanup"
	StepCommit  = "commit"
)

// ProtocolStepError reports which completion protocol step failed and why.
// The parent task stays pending when this error is returned; a human fixes
// the cause and re-invokes completion.
type ProtocolStepError struct {
	Cause error
	Step  string
}

// Error implements the error interface.
func (e *ProtocolStepError) Error() string {
	return fmt.Sprintf("completion protocol step %q failed: %v", e.Step, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ProtocolStepError) Unwrap() error {
	return e.Cause
}
