package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTaskDoc() *Document {
	return &Document{
		Path: "tasks.md",
		Tasks: []Task{
			{
				ID:     "1.0",
				Title:  "Set up scaffolding",
				Status: StatusPending,
				Subtasks: []Task{
					{ID: "1.1", Title: "Create handler", Status: StatusPending},
					{ID: "1.2", Title: "Add middleware", Status: StatusPending},
				},
			},
			{
				ID:     "2.0",
				Title:  "Write docs",
				Status: StatusPending,
				Subtasks: []Task{
					{ID: "2.1", Title: "Draft README", Status: StatusPending},
				},
			},
		},
	}
}

func TestDocument_NextPending_DocumentOrder(t *testing.T) {
	doc := twoTaskDoc()

	next := doc.NextPending()
	require.NotNil(t, next)
	assert.Equal(t, "1.1", next.ID)

	require.NoError(t, doc.MarkCompleted("1.1"))
	next = doc.NextPending()
	require.NotNil(t, next)
	assert.Equal(t, "1.2", next.ID, "completed tasks are skipped")

	require.NoError(t, doc.MarkCompleted("1.2"))
	next = doc.NextPending()
	require.NotNil(t, next)
	assert.Equal(t, "2.1", next.ID, "moves to the next parent in order")

	require.NoError(t, doc.MarkCompleted("2.1"))
	assert.Nil(t, doc.NextPending())
}

func TestDocument_NextPending_ChildlessTask(t *testing.T) {
	doc := &Document{
		Tasks: []Task{
			{ID: "1.0", Title: "Standalone", Status: StatusPending},
			{ID: "2.0", Title: "Next", Status: StatusPending, Subtasks: []Task{
				{ID: "2.1", Title: "Sub", Status: StatusPending},
			}},
		},
	}

	next := doc.NextPending()
	require.NotNil(t, next)
	assert.Equal(t, "1.0", next.ID, "a childless top-level task is its own leaf")
}

func TestDocument_MarkCompleted(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   func(*Document)
		wantErr error
	}{
		{name: "leaf", id: "1.1"},
		{name: "unknown id", id: "9.9", wantErr: ErrTaskNotFound},
		{name: "parent id", id: "1.0", wantErr: ErrNotLeafTask},
		{
			name: "already completed",
			id:   "1.1",
			setup: func(d *Document) {
				require.NoError(t, d.MarkCompleted("1.1"))
			},
			wantErr: ErrTaskAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := twoTaskDoc()
			if tt.setup != nil {
				tt.setup(doc)
			}

			err := doc.MarkCompleted(tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, doc.Find(tt.id).Completed())
			assert.False(t, doc.Find("1.0").Completed(), "parent is never touched")
		})
	}
}

func TestDocument_MarkCompleted_TwiceLeavesTreeUnchanged(t *testing.T) {
	doc := twoTaskDoc()
	require.NoError(t, doc.MarkCompleted("1.1"))

	before := *doc.Find("1.1")
	err := doc.MarkCompleted("1.1")

	assert.ErrorIs(t, err, ErrTaskAlreadyCompleted)
	assert.Equal(t, before, *doc.Find("1.1"))
	done, total := doc.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)
}

func TestDocument_ParentReady(t *testing.T) {
	doc := twoTaskDoc()

	assert.False(t, doc.ParentReady("1.0"), "children still pending")

	require.NoError(t, doc.MarkCompleted("1.1"))
	assert.False(t, doc.ParentReady("1.0"))

	require.NoError(t, doc.MarkCompleted("1.2"))
	assert.True(t, doc.ParentReady("1.0"))

	doc.Find("1.0").Status = StatusCompleted
	assert.False(t, doc.ParentReady("1.0"), "completed parent is not ready again")

	assert.False(t, doc.ParentReady("9.0"), "unknown parent")
}

func TestDocument_ParentOf(t *testing.T) {
	doc := twoTaskDoc()

	parent := doc.ParentOf("2.1")
	require.NotNil(t, parent)
	assert.Equal(t, "2.0", parent.ID)

	assert.Nil(t, doc.ParentOf("1.0"), "top-level tasks have no parent")
	assert.Nil(t, doc.ParentOf("9.9"))
}

func TestDocument_RecordFile(t *testing.T) {
	doc := &Document{}

	require.NoError(t, doc.RecordFile("internal/auth/login.go", "Handles login flow."))
	require.NoError(t, doc.RecordFile("internal/auth/login_test.go", "Unit tests for login."))

	// Same path, new description: exactly one entry with the latest text.
	require.NoError(t, doc.RecordFile("internal/auth/login.go", "Login and logout flow."))

	require.Len(t, doc.Files, 2)
	assert.Equal(t, "internal/auth/login.go", doc.Files[0].Path, "insertion order preserved")
	assert.Equal(t, "Login and logout flow.", doc.Files[0].Description)

	// Empty description keeps the existing one.
	require.NoError(t, doc.RecordFile("internal/auth/login.go", ""))
	assert.Equal(t, "Login and logout flow.", doc.Files[0].Description)

	assert.ErrorIs(t, doc.RecordFile("  ", "desc"), ErrEmptyPath)
}

func TestDocument_NextIDs(t *testing.T) {
	doc := twoTaskDoc()

	assert.Equal(t, "3.0", doc.NextParentID())

	id, err := doc.NextSubtaskID("1.0")
	require.NoError(t, err)
	assert.Equal(t, "1.3", id)

	id, err = doc.NextSubtaskID("2.0")
	require.NoError(t, err)
	assert.Equal(t, "2.2", id)

	_, err = doc.NextSubtaskID("9.0")
	assert.ErrorIs(t, err, ErrParentNotFound)

	empty := &Document{}
	assert.Equal(t, "1.0", empty.NextParentID())
}

func TestDocument_Progress(t *testing.T) {
	doc := twoTaskDoc()
	require.NoError(t, doc.MarkCompleted("1.1"))

	done, total := doc.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)
	assert.False(t, doc.AllCompleted())
}
