// Package tui provides the interactive terminal checklist for mdtask.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/usecase"
)

// mode represents the interaction state of the TUI.
type mode int

const (
	modeNormal  mode = iota
	modeConfirm      // waiting for completion approval
	modeTicket       // collecting a ticket reference
)

// row is one line of the flattened checklist.
type row struct {
	task   *domain.Task
	parent *domain.Task // nil for top-level tasks
}

// Model is the bubbletea model for the checklist.
type Model struct {
	container *app.Container
	path      string
	keys      KeyMap
	styles    Styles

	doc    *domain.Document
	rows   []row
	cursor int
	done   int
	total  int

	mode    mode
	pending string // task id awaiting confirmation or ticket input
	ticket  textinput.Model

	status string
	err    error

	width  int
	height int
}

// New creates a new TUI model for the document at path.
func New(c *app.Container, path string) Model {
	ti := textinput.New()
	ti.Placeholder = "PROJ-123 (blank for none)"
	ti.CharLimit = 64

	return Model{
		container: c,
		path:      path,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		ticket:    ti,
	}
}

// Init loads the document.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles messages and keypresses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case docLoadedMsg:
		m.doc = msg.out.Document
		m.done = msg.out.Done
		m.total = msg.out.Total
		m.rows = flatten(m.doc)
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		return m, nil

	case completeDoneMsg:
		m.mode = modeNormal
		m.pending = ""
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, m.loadCmd()
		}
		m.err = nil
		m.status = completionStatus(msg.out)
		return m, m.loadCmd()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a keypress according to the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeTicket:
		return m.handleTicketKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Complete):
		r, ok := m.selected()
		if !ok || !actionable(r) {
			return m, nil
		}
		m.pending = r.task.ID
		m.mode = modeConfirm
		m.err = nil
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleConfirmKey handles the completion approval prompt. Only an
// explicit yes proceeds; anything else cancels.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.needsTicket() {
			m.mode = modeTicket
			m.ticket.SetValue("")
			m.ticket.Focus()
			return m, textinput.Blink
		}
		m.mode = modeNormal
		return m, m.completeCmd(m.pending, "")

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	default:
		m.mode = modeNormal
		m.pending = ""
		m.status = "Cancelled."
		return m, nil
	}
}

// handleTicketKey collects the ticket reference for the protocol commit.
func (m Model) handleTicketKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		ticket := m.ticket.Value()
		m.ticket.Blur()
		m.mode = modeNormal
		return m, m.completeCmd(m.pending, ticket)

	case tea.KeyEsc:
		m.ticket.Blur()
		m.mode = modeNormal
		m.pending = ""
		m.status = "Cancelled."
		return m, nil
	}

	var cmd tea.Cmd
	m.ticket, cmd = m.ticket.Update(msg)
	return m, cmd
}

// selected returns the row under the cursor.
func (m Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// needsTicket reports whether completing the pending task would run the
// protocol without a ticket reference available, so one must be asked for.
func (m Model) needsTicket() bool {
	if !m.container.Config.Commit.AskTicket || m.doc == nil || m.doc.Meta.Ticket != "" {
		return false
	}
	task := m.doc.Find(m.pending)
	if task == nil {
		return false
	}
	return protocolWillRun(m.doc, task)
}

// loadCmd reloads the document snapshot.
func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{Path: m.path})
		if err != nil {
			return errMsg{err: err}
		}
		return docLoadedMsg{out: out}
	}
}

// completeCmd runs the complete use case for the task. The ticket was
// already collected here, so the use case must not prompt on stdin.
func (m Model) completeCmd(id, ticket string) tea.Cmd {
	return func() tea.Msg {
		g, err := m.container.Git()
		if err != nil {
			return completeDoneMsg{err: err}
		}
		cfg := *m.container.Config
		cfg.Commit.AskTicket = false
		uc := usecase.NewCompleteTask(m.container.Store, m.container.Runner, g, m.container.Cleaner, m.container.Prompter, &cfg, m.container.Logger)
		out, err := uc.Execute(context.Background(), usecase.CompleteTaskInput{
			Path:   m.path,
			TaskID: id,
			Ticket: ticket,
		})
		return completeDoneMsg{out: out, err: err}
	}
}

// flatten turns the two-level checklist into display rows.
func flatten(doc *domain.Document) []row {
	var rows []row
	for i := range doc.Tasks {
		parent := &doc.Tasks[i]
		rows = append(rows, row{task: parent})
		for j := range parent.Subtasks {
			rows = append(rows, row{task: &parent.Subtasks[j], parent: parent})
		}
	}
	return rows
}

// actionable reports whether the row can be completed right now: a
// pending sub-task, a pending childless task, or a pending parent whose
// sub-tasks are all done (the protocol retry case).
func actionable(r row) bool {
	if r.task.Completed() {
		return false
	}
	if r.task.IsParent() {
		return r.task.SubtasksCompleted()
	}
	return true
}

// protocolWillRun reports whether completing the task triggers the
// completion protocol.
func protocolWillRun(doc *domain.Document, task *domain.Task) bool {
	if task.IsParent() {
		return task.SubtasksCompleted()
	}
	parent := doc.ParentOf(task.ID)
	if parent == nil {
		return true
	}
	for i := range parent.Subtasks {
		sub := &parent.Subtasks[i]
		if sub.ID != task.ID && !sub.Completed() {
			return false
		}
	}
	return true
}
