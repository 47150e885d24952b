package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/okikae/mdtask/internal/domain"
)

// AddTaskInput contains the parameters for appending a task.
type AddTaskInput struct {
	Path     string // Task document path
	ParentID string // Empty to append a parent task
	Title    string // Task title
}

// AddTaskOutput contains the appended task.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for appending parent tasks and sub-tasks.
// Parent tasks are drafted first; sub-tasks are filled in afterwards,
// matching the two-phase authoring flow.
type AddTask struct {
	store domain.DocumentStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.DocumentStore) *AddTask {
	return &AddTask{store: store}
}

// Execute appends a pending task with the next free dotted id.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	doc, err := uc.store.Load(in.Path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	var task *domain.Task
	if in.ParentID == "" {
		doc.Tasks = append(doc.Tasks, domain.Task{
			ID:     doc.NextParentID(),
			Title:  title,
			Status: domain.StatusPending,
		})
		task = &doc.Tasks[len(doc.Tasks)-1]
	} else {
		parent := doc.Find(in.ParentID)
		if parent == nil || doc.ParentOf(in.ParentID) != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrParentNotFound, in.ParentID)
		}
		if parent.Completed() {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, in.ParentID)
		}
		id, err := doc.NextSubtaskID(in.ParentID)
		if err != nil {
			return nil, err
		}
		parent.Subtasks = append(parent.Subtasks, domain.Task{
			ID:     id,
			Title:  title,
			Status: domain.StatusPending,
		})
		task = &parent.Subtasks[len(parent.Subtasks)-1]
	}

	if err := uc.store.Save(doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return &AddTaskOutput{Task: task}, nil
}
