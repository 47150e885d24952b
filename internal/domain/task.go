// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Task represents a single entry in the task checklist.
// Parent tasks own an ordered list of sub-tasks; sub-tasks have none.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID       string `yaml:"id"`                 // Dotted identifier, e.g. "1.0", "1.1"
	Title    string `yaml:"title"`              // Title (required)
	Status   Status `yaml:"status"`             // Current status
	Subtasks []Task `yaml:"subtasks,omitempty"` // Ordered sub-tasks (parents only)
}

// IsParent returns true if the task owns sub-tasks.
func (t *Task) IsParent() bool {
	return len(t.Subtasks) > 0
}

// Completed returns true if the task status is completed.
func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}

// SubtasksCompleted returns true if every sub-task is completed.
// A task without sub-tasks trivially satisfies this.
func (t *Task) SubtasksCompleted() bool {
	for i := range t.Subtasks {
		if !t.Subtasks[i].Completed() {
			return false
		}
	}
	return true
}

// Progress returns the number of completed sub-tasks and the total.
func (t *Task) Progress() (done, total int) {
	for i := range t.Subtasks {
		if t.Subtasks[i].Completed() {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// CompletedTitles returns the titles of completed sub-tasks in order.
func (t *Task) CompletedTitles() []string {
	var titles []string
	for i := range t.Subtasks {
		if t.Subtasks[i].Completed() {
			titles = append(titles, t.Subtasks[i].Title)
		}
	}
	return titles
}

// ParentIDOf derives the parent identifier from a dotted sub-task id.
// "3.2" yields "3.0"; ids that are already parent ids ("3.0") or not
// dotted return an empty string.
func ParentIDOf(id string) string {
	major, minor, ok := splitID(id)
	if !ok || minor == 0 {
		return ""
	}
	return fmt.Sprintf("%d.0", major)
}

// ValidTaskID returns true if id follows the dotted "N.M" notation.
func ValidTaskID(id string) bool {
	_, _, ok := splitID(id)
	return ok
}

// splitID parses a dotted id into its major and minor components.
func splitID(id string) (major, minor int, ok bool) {
	head, tail, found := strings.Cut(id, ".")
	if !found {
		return 0, 0, false
	}
	major, err := strconv.Atoi(head)
	if err != nil || major < 1 {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(tail)
	if err != nil || minor < 0 {
		return 0, 0, false
	}
	return major, minor, true
}
