package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/testutil"
)

func TestAddTask_Parent(t *testing.T) {
	store := testutil.NewMockDocumentStore()
	store.Docs[docPath] = pendingDoc()
	uc := NewAddTask(store)

	out, err := uc.Execute(context.Background(), AddTaskInput{Path: docPath, Title: "Write docs"})
	require.NoError(t, err)

	assert.Equal(t, "2.0", out.Task.ID)
	assert.Equal(t, domain.StatusPending, out.Task.Status)

	saved := store.Docs[docPath]
	require.Len(t, saved.Tasks, 2)
	assert.Equal(t, "Write docs", saved.Tasks[1].Title)
}

func TestAddTask_Subtask(t *testing.T) {
	store := testutil.NewMockDocumentStore()
	store.Docs[docPath] = pendingDoc()
	uc := NewAddTask(store)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		Path: docPath, ParentID: "1.0", Title: "Wire router",
	})
	require.NoError(t, err)

	assert.Equal(t, "1.3", out.Task.ID)
	saved := store.Docs[docPath]
	require.Len(t, saved.Tasks[0].Subtasks, 3)
}

func TestAddTask_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      AddTaskInput
		setup   func(*domain.Document)
		wantErr error
	}{
		{
			name:    "empty title",
			in:      AddTaskInput{Path: docPath, Title: "  "},
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "unknown parent",
			in:      AddTaskInput{Path: docPath, ParentID: "9.0", Title: "X"},
			wantErr: domain.ErrParentNotFound,
		},
		{
			name:    "sub-task as parent",
			in:      AddTaskInput{Path: docPath, ParentID: "1.1", Title: "X"},
			wantErr: domain.ErrParentNotFound,
		},
		{
			name: "completed parent",
			in:   AddTaskInput{Path: docPath, ParentID: "1.0", Title: "X"},
			setup: func(d *domain.Document) {
				d.Tasks[0].Status = domain.StatusCompleted
			},
			wantErr: domain.ErrTaskAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := pendingDoc()
			if tt.setup != nil {
				tt.setup(doc)
			}
			store := testutil.NewMockDocumentStore()
			store.Docs[docPath] = doc
			uc := NewAddTask(store)

			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInitDocument_Execute(t *testing.T) {
	store := testutil.NewMockDocumentStore()
	uc := NewInitDocument(store)

	out, err := uc.Execute(context.Background(), InitDocumentInput{Path: "new.md", Title: "Feature X"})
	require.NoError(t, err)
	assert.Equal(t, "Feature X", out.Document.Meta.Title)
	assert.Empty(t, out.Document.Tasks)

	_, err = uc.Execute(context.Background(), InitDocumentInput{Path: "new.md"})
	assert.ErrorIs(t, err, domain.ErrDocumentExists)
}

func TestListTasks_Execute(t *testing.T) {
	doc := pendingDoc()
	doc.Tasks[0].Subtasks[0].Status = domain.StatusCompleted
	store := testutil.NewMockDocumentStore()
	store.Docs[docPath] = doc
	uc := NewListTasks(store)

	out, err := uc.Execute(context.Background(), ListTasksInput{Path: docPath})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Done)
	assert.Equal(t, 2, out.Total)
	require.NotNil(t, out.Next)
	assert.Equal(t, "1.2", out.Next.ID)
	require.Len(t, out.Document.Tasks, 1)
}
