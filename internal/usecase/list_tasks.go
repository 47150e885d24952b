package usecase

import (
	"context"
	"fmt"

	"github.com/okikae/mdtask/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Path string // Task document path
}

// ListTasksOutput is a read-only snapshot of the document state.
type ListTasksOutput struct {
	Document *domain.Document
	Next     *domain.Task // Next pending leaf, nil when all done
	Done     int
	Total    int
}

// ListTasks is the use case for displaying the checklist.
type ListTasks struct {
	store domain.DocumentStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.DocumentStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute loads the document and computes progress. No side effects.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	doc, err := uc.store.Load(in.Path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	done, total := doc.Progress()
	return &ListTasksOutput{
		Document: doc,
		Next:     doc.NextPending(),
		Done:     done,
		Total:    total,
	}, nil
}
