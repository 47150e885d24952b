package tui

import (
	"fmt"
	"strings"

	"github.com/okikae/mdtask/internal/usecase"
)

// View renders the checklist.
func (m Model) View() string {
	if m.doc == nil {
		if m.err != nil {
			return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		}
		return "Loading...\n"
	}

	var b strings.Builder

	title := m.doc.Meta.Title
	if title == "" {
		title = m.doc.Path
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("  ")
	b.WriteString(m.styles.Progress.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
	b.WriteString("\n\n")

	for i, r := range m.rows {
		b.WriteString(m.renderRow(r, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(m.styles.Help.Render("↑/↓ move · enter complete · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderRow renders one checklist line.
func (m Model) renderRow(r row, selected bool) string {
	indent := ""
	if r.parent != nil {
		indent = "  "
	}

	checkbox := m.styles.Checkbox.Render(r.task.Status.Checkbox())
	if r.task.Completed() {
		checkbox = m.styles.CheckboxDone.Render(r.task.Status.Checkbox())
	}

	line := fmt.Sprintf("%s %s", r.task.ID, r.task.Title)
	switch {
	case selected:
		line = m.styles.TaskSelected.Render("> " + line)
	case r.task.Completed():
		line = m.styles.TaskCompleted.Render("  " + line)
	default:
		line = m.styles.TaskNormal.Render("  " + line)
	}

	return indent + checkbox + " " + line
}

// renderStatus renders the prompt, error, or status line for the
// current mode.
func (m Model) renderStatus() string {
	switch m.mode {
	case modeConfirm:
		return m.styles.Prompt.Render(fmt.Sprintf("Mark task %s complete? [y/N]", m.pending)) + "\n"
	case modeTicket:
		return m.styles.Prompt.Render("Ticket reference: ") + m.ticket.View() + "\n"
	}
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.status != "" {
		return m.styles.Status.Render(m.status) + "\n"
	}
	return ""
}

// completionStatus summarizes a successful complete operation.
func completionStatus(out *usecase.CompleteTaskOutput) string {
	if out == nil {
		return ""
	}
	if out.ParentCompleted {
		if out.CommitHash != "" {
			return fmt.Sprintf("Completed %s, parent %s committed as %.7s", out.Task.ID, out.ParentID, out.CommitHash)
		}
		return fmt.Sprintf("Completed %s, parent %s done", out.Task.ID, out.ParentID)
	}
	return fmt.Sprintf("Completed %s", out.Task.ID)
}
