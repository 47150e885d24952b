// Package usecase contains the application's use cases. Each use case is
// a small struct with an Execute method taking an Input and returning an
// Output, wired to domain ports by the app container.
package usecase

import (
	"context"
	"fmt"

	"github.com/okikae/mdtask/internal/domain"
)

// NextTaskInput contains the parameters for finding the next sub-task.
type NextTaskInput struct {
	Path string // Task document path
}

// NextTaskOutput contains the next pending task and progress counts.
type NextTaskOutput struct {
	Task   *domain.Task // First pending leaf in document order
	Parent *domain.Task // Owning parent, nil for top-level tasks
	Done   int          // Completed leaf count
	Total  int          // Total leaf count
}

// NextTask is the use case for finding the next pending sub-task.
type NextTask struct {
	store domain.DocumentStore
}

// NewNextTask creates a new NextTask use case.
func NewNextTask(store domain.DocumentStore) *NextTask {
	return &NextTask{store: store}
}

// Execute returns the first pending leaf task in document order.
// It has no side effects.
func (uc *NextTask) Execute(_ context.Context, in NextTaskInput) (*NextTaskOutput, error) {
	doc, err := uc.store.Load(in.Path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	next := doc.NextPending()
	if next == nil {
		return nil, domain.ErrNoPendingTasks
	}

	done, total := doc.Progress()
	return &NextTaskOutput{
		Task:   next,
		Parent: doc.ParentOf(next.ID),
		Done:   done,
		Total:  total,
	}, nil
}
