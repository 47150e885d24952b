package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"   // Not yet done
	StatusCompleted Status = "completed" // Done (for parents: protocol succeeded)
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// CanComplete returns true if a task in this status can be completed.
func (s Status) CanComplete() bool {
	return s == StatusPending
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Checkbox returns the Markdown checkbox marker for the status.
func (s Status) Checkbox() string {
	if s == StatusCompleted {
		return "[x]"
	}
	return "[ ]"
}
