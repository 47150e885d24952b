package domain

import (
	"fmt"
	"strings"
)

// Meta holds document-level settings from the YAML frontmatter.
type Meta struct {
	Title       string `yaml:"title,omitempty"`        // Document title
	Ticket      string `yaml:"ticket,omitempty"`       // Ticket reference for commit messages
	TestCommand string `yaml:"test_command,omitempty"` // Overrides the configured test command
}

// FileEntry is one line of the Relevant Files ledger.
type FileEntry struct {
	Path        string // Repository-relative file path
	Description string // One-line description
}

// Document is the in-memory form of a single Markdown task-list file.
// It is parsed at the start of a session and serialized back after every
// mutation; the file is the only persistence.
type Document struct {
	Path  string      // Location of the Markdown file (not serialized)
	Meta  Meta        // Frontmatter settings
	Files []FileEntry // Relevant Files ledger, insertion order
	Notes []string    // Free-form note lines, round-tripped verbatim
	Tasks []Task      // Parent tasks in document order
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := *d
	clone.Files = append([]FileEntry(nil), d.Files...)
	clone.Notes = append([]string(nil), d.Notes...)
	clone.Tasks = make([]Task, len(d.Tasks))
	for i := range d.Tasks {
		clone.Tasks[i] = d.Tasks[i]
		clone.Tasks[i].Subtasks = append([]Task(nil), d.Tasks[i].Subtasks...)
	}
	return &clone
}

// Find returns the task with the given id, or nil if absent.
func (d *Document) Find(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
		for j := range d.Tasks[i].Subtasks {
			if d.Tasks[i].Subtasks[j].ID == id {
				return &d.Tasks[i].Subtasks[j]
			}
		}
	}
	return nil
}

// ParentOf returns the parent task owning the given sub-task id,
// or nil if id names a top-level task or is absent.
func (d *Document) ParentOf(id string) *Task {
	for i := range d.Tasks {
		for j := range d.Tasks[i].Subtasks {
			if d.Tasks[i].Subtasks[j].ID == id {
				return &d.Tasks[i]
			}
		}
	}
	return nil
}

// NextPending returns the first pending leaf task in document order.
// Sub-tasks are the leaves; a top-level task without sub-tasks counts as
// its own leaf. Returns nil when no pending leaf remains.
func (d *Document) NextPending() *Task {
	for i := range d.Tasks {
		parent := &d.Tasks[i]
		if !parent.IsParent() {
			if !parent.Completed() {
				return parent
			}
			continue
		}
		for j := range parent.Subtasks {
			if !parent.Subtasks[j].Completed() {
				return &parent.Subtasks[j]
			}
		}
	}
	return nil
}

// MarkCompleted sets the identified leaf task to completed.
// The owning parent is never touched here; parent completion is derived
// separately because it is gated on the completion protocol.
func (d *Document) MarkCompleted(id string) error {
	task := d.Find(id)
	if task == nil {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if task.IsParent() {
		return fmt.Errorf("%w: %s", ErrNotLeafTask, id)
	}
	if task.Completed() {
		return fmt.Errorf("%w: %s", ErrTaskAlreadyCompleted, id)
	}
	task.Status = StatusCompleted
	return nil
}

// ParentReady reports whether the parent task is still pending while all
// of its sub-tasks are completed, i.e. the completion protocol may run.
func (d *Document) ParentReady(parentID string) bool {
	parent := d.Find(parentID)
	if parent == nil || parent.Completed() || !parent.IsParent() {
		return false
	}
	return parent.SubtasksCompleted()
}

// RecordFile inserts a ledger entry for path, or updates the description
// of an existing entry. Insertion order is preserved; recording the same
// path and description twice is a no-op.
func (d *Document) RecordFile(path, description string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}
	for i := range d.Files {
		if d.Files[i].Path == path {
			if description != "" {
				d.Files[i].Description = description
			}
			return nil
		}
	}
	d.Files = append(d.Files, FileEntry{Path: path, Description: description})
	return nil
}

// Progress returns the number of completed leaf tasks and the total.
func (d *Document) Progress() (done, total int) {
	for i := range d.Tasks {
		parent := &d.Tasks[i]
		if !parent.IsParent() {
			total++
			if parent.Completed() {
				done++
			}
			continue
		}
		sub, all := parent.Progress()
		done += sub
		total += all
	}
	return done, total
}

// AllCompleted returns true if every task, parents included, is completed.
func (d *Document) AllCompleted() bool {
	for i := range d.Tasks {
		if !d.Tasks[i].Completed() {
			return false
		}
		if !d.Tasks[i].SubtasksCompleted() {
			return false
		}
	}
	return true
}

// NextParentID returns the id the next appended parent task should use.
func (d *Document) NextParentID() string {
	max := 0
	for i := range d.Tasks {
		if major, _, ok := splitID(d.Tasks[i].ID); ok && major > max {
			max = major
		}
	}
	return fmt.Sprintf("%d.0", max+1)
}

// NextSubtaskID returns the id the next sub-task under parentID should use.
func (d *Document) NextSubtaskID(parentID string) (string, error) {
	parent := d.Find(parentID)
	if parent == nil {
		return "", fmt.Errorf("%w: %s", ErrParentNotFound, parentID)
	}
	major, _, ok := splitID(parent.ID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrParentNotFound, parentID)
	}
	max := 0
	for i := range parent.Subtasks {
		if _, minor, ok := splitID(parent.Subtasks[i].ID); ok && minor > max {
			max = minor
		}
	}
	return fmt.Sprintf("%d.%d", major, max+1), nil
}
