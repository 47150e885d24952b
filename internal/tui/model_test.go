package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel creates a Model wired to mock dependencies and a loaded
// two-parent checklist.
func newTestModel(t *testing.T) (Model, *testutil.MockDocumentStore, *testutil.MockGit) {
	t.Helper()

	store := testutil.NewMockDocumentStore()
	store.Docs["tasks.md"] = &domain.Document{
		Path: "tasks.md",
		Meta: domain.Meta{Title: "Parser work"},
		Tasks: []domain.Task{
			{ID: "1.0", Title: "Build parser", Status: domain.StatusPending, Subtasks: []domain.Task{
				{ID: "1.1", Title: "Tokenize", Status: domain.StatusCompleted},
				{ID: "1.2", Title: "Parse headings", Status: domain.StatusPending},
			}},
			{ID: "2.0", Title: "Write docs", Status: domain.StatusPending, Subtasks: []domain.Task{
				{ID: "2.1", Title: "README", Status: domain.StatusPending},
			}},
		},
	}

	cfg := domain.NewDefaultConfig()
	cfg.Test.Command = "go test ./..."
	git := &testutil.MockGit{}
	container := app.NewWithDeps(
		app.Paths{WorkDir: ".", TaskFile: "tasks.md"},
		cfg,
		store,
		&testutil.MockTestRunner{Output: "ok\n"},
		git,
		&testutil.MockCleaner{},
		&testutil.MockPrompter{},
	)

	m := New(container, "tasks.md")
	loaded := loadDoc(t, m)
	return loaded, store, git
}

// loadDoc runs the model's load command and applies the resulting message.
func loadDoc(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.loadCmd()()
	loaded, ok := msg.(docLoadedMsg)
	require.True(t, ok, "expected docLoadedMsg, got %T", msg)
	next, _ := m.Update(loaded)
	return next.(Model)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_LoadsDocument(t *testing.T) {
	m, _, _ := newTestModel(t)

	require.Len(t, m.rows, 5)
	assert.Equal(t, "1.0", m.rows[0].task.ID)
	assert.Equal(t, "1.2", m.rows[2].task.ID)
	assert.Equal(t, 1, m.done)
	assert.Equal(t, 3, m.total)

	view := m.View()
	assert.Contains(t, view, "Parser work")
	assert.Contains(t, view, "1.2 Parse headings")
	assert.Contains(t, view, "1/3")
}

func TestModel_Navigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(keyPress("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyPress("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	// Never moves above the first row.
	next, _ = m.Update(keyPress("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_CompleteNeedsApproval(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Move to sub-task 1.2 and ask to complete it.
	m.cursor = 2
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)
	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, "1.2", m.pending)
	assert.Contains(t, m.View(), "Mark task 1.2 complete? [y/N]")

	// Anything but yes cancels without touching the document.
	next, _ = m.Update(keyPress("n"))
	m = next.(Model)
	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, m.pending)
	assert.Contains(t, m.View(), "Cancelled.")
}

func TestModel_CompleteFlow(t *testing.T) {
	m, store, git := newTestModel(t)

	m.cursor = 2 // 1.2, the last pending sub-task of 1.0
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	next, cmd := m.Update(keyPress("y"))
	m = next.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(completeDoneMsg)
	require.True(t, ok, "expected completeDoneMsg, got %T", msg)
	require.NoError(t, done.err)
	assert.True(t, done.out.ParentCompleted)

	next, reload := m.Update(done)
	m = next.(Model)
	assert.Contains(t, m.status, "parent 1.0")
	require.NotNil(t, reload)

	// The protocol committed and the parent is checked off in the store.
	require.Len(t, git.Messages, 1)
	assert.Equal(t, domain.StatusCompleted, store.Docs["tasks.md"].Find("1.0").Status)
}

func TestModel_ParentNotActionable(t *testing.T) {
	m, _, _ := newTestModel(t)

	// 2.0 still has a pending sub-task, so enter does nothing.
	m.cursor = 3
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)
	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, m.pending)
}

func TestModel_TicketPrompt(t *testing.T) {
	m, _, git := newTestModel(t)
	m.container.Config.Commit.AskTicket = true

	m.cursor = 2
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	next, _ = m.Update(keyPress("y"))
	m = next.(Model)
	require.Equal(t, modeTicket, m.mode)

	for _, r := range "PROJ-7" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	next, cmd := m.Update(keyPress("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(completeDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	require.Len(t, git.Messages, 1)
	assert.Contains(t, git.Messages[0], "PROJ-7")
}

func TestProtocolWillRun(t *testing.T) {
	doc := &domain.Document{
		Path: "tasks.md",
		Tasks: []domain.Task{
			{ID: "1.0", Title: "Parent", Status: domain.StatusPending, Subtasks: []domain.Task{
				{ID: "1.1", Title: "Done", Status: domain.StatusCompleted},
				{ID: "1.2", Title: "Last", Status: domain.StatusPending},
			}},
			{ID: "2.0", Title: "Parent two", Status: domain.StatusPending, Subtasks: []domain.Task{
				{ID: "2.1", Title: "First", Status: domain.StatusPending},
				{ID: "2.2", Title: "Second", Status: domain.StatusPending},
			}},
			{ID: "3.0", Title: "Childless", Status: domain.StatusPending},
		},
	}

	tests := []struct {
		id   string
		want bool
	}{
		{"1.2", true},  // last pending sub-task
		{"2.1", false}, // 2.2 still pending
		{"3.0", true},  // childless tasks commit on their own
		{"1.0", false}, // parent with a pending sub-task
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			task := doc.Find(tt.id)
			require.NotNil(t, task)
			assert.Equal(t, tt.want, protocolWillRun(doc, task))
		})
	}
}
