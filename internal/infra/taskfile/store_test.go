package taskfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okikae/mdtask/internal/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	store := New()

	doc := &domain.Document{
		Path: path,
		Meta: domain.Meta{Title: "Demo", Ticket: "T-7"},
		Files: []domain.FileEntry{
			{Path: "main.go", Description: "Entry point."},
		},
		Tasks: []domain.Task{
			{
				ID: "1.0", Title: "Parent", Status: domain.StatusPending,
				Subtasks: []domain.Task{
					{ID: "1.1", Title: "Sub", Status: domain.StatusCompleted},
				},
			},
		},
	}

	require.NoError(t, store.Save(doc))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestStore_LoadMissing(t *testing.T) {
	store := New()

	_, err := store.Load(filepath.Join(t.TempDir(), "absent.md"))
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestStore_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	store := New()

	ok, err := store.Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("## Tasks\n"), 0o644))

	ok, err = store.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_SaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	store := New()

	doc := &domain.Document{
		Path:  path,
		Tasks: []domain.Task{{ID: "1.0", Title: "One", Status: domain.StatusPending}},
	}
	require.NoError(t, store.Save(doc))

	doc.Tasks[0].Status = domain.StatusCompleted
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.Tasks[0].Completed())

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp.")
	}
}
