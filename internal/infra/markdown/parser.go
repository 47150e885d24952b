// Package markdown parses and renders the Markdown task-list document.
//
// A document consists of an optional YAML frontmatter block, a
// "## Relevant Files" bullet section, an optional "### Notes" section of
// free-form lines, and a "## Tasks" checklist with two levels of nesting
// and dotted numeric ids.
package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okikae/mdtask/internal/domain"
)

// Section headings recognized by the parser.
const (
	headingFiles = "## Relevant Files"
	headingNotes = "### Notes"
	headingTasks = "## Tasks"
)

type section int

const (
	sectionNone section = iota
	sectionFiles
	sectionNotes
	sectionTasks
)

// Parse builds a Document from the Markdown source. Path is recorded on
// the returned document but not interpreted.
func Parse(path, source string) (*domain.Document, error) {
	doc := &domain.Document{Path: path}

	body, err := parseFrontmatter(source, &doc.Meta)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	current := sectionNone
	var parent *domain.Task

	for lineNo, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimRight(line, " \t")

		switch trimmed {
		case headingFiles:
			current = sectionFiles
			continue
		case headingNotes:
			current = sectionNotes
			continue
		case headingTasks:
			current = sectionTasks
			continue
		}

		switch current {
		case sectionFiles:
			if entry, ok := parseFileEntry(trimmed); ok {
				doc.Files = append(doc.Files, entry)
			}
		case sectionNotes:
			if trimmed != "" {
				doc.Notes = append(doc.Notes, trimmed)
			}
		case sectionTasks:
			task, indented, ok, err := parseChecklistLine(trimmed)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			if !ok {
				continue
			}
			if seen[task.ID] {
				return nil, fmt.Errorf("line %d: %w: %s", lineNo+1, domain.ErrDuplicateTaskID, task.ID)
			}
			seen[task.ID] = true
			if indented {
				if parent == nil {
					return nil, fmt.Errorf("line %d: sub-task %s has no parent task", lineNo+1, task.ID)
				}
				parent.Subtasks = append(parent.Subtasks, task)
			} else {
				doc.Tasks = append(doc.Tasks, task)
				parent = &doc.Tasks[len(doc.Tasks)-1]
			}
		case sectionNone:
			// Prose before the first section is ignored.
		}
	}

	return doc, nil
}

// parseFrontmatter strips and decodes a leading YAML frontmatter block.
// Returns the remaining body.
func parseFrontmatter(source string, meta *domain.Meta) (string, error) {
	if !strings.HasPrefix(source, "---\n") {
		return source, nil
	}
	rest := source[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", fmt.Errorf("frontmatter: missing closing ---")
	}
	block := rest[:end+1]
	if err := yaml.Unmarshal([]byte(block), meta); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	body := rest[end+len("\n---"):]
	return strings.TrimPrefix(strings.TrimPrefix(body, "\n"), "\n"), nil
}

// parseFileEntry parses a "- `path` - description" ledger bullet.
func parseFileEntry(line string) (domain.FileEntry, bool) {
	rest, ok := strings.CutPrefix(line, "- `")
	if !ok {
		return domain.FileEntry{}, false
	}
	path, desc, ok := strings.Cut(rest, "`")
	if !ok || path == "" {
		return domain.FileEntry{}, false
	}
	desc = strings.TrimPrefix(desc, " -")
	return domain.FileEntry{
		Path:        path,
		Description: strings.TrimSpace(desc),
	}, true
}

// parseChecklistLine parses one checklist entry. Indented entries are
// sub-tasks of the preceding parent. Lines that are not checklist entries
// (blank lines, prose) report ok=false without an error.
func parseChecklistLine(line string) (task domain.Task, indented bool, ok bool, err error) {
	entry := line
	if strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t") {
		indented = true
		entry = strings.TrimLeft(line, " \t")
	}

	rest, found := strings.CutPrefix(entry, "- [")
	if !found || len(rest) < 2 || rest[1] != ']' {
		return domain.Task{}, false, false, nil
	}
	mark := rest[0]
	body := strings.TrimSpace(rest[2:])

	id, title, found := strings.Cut(body, " ")
	if !found || !domain.ValidTaskID(id) {
		return domain.Task{}, false, false, fmt.Errorf("malformed checklist entry: %q", line)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, false, false, fmt.Errorf("checklist entry %s: %w", id, domain.ErrEmptyTitle)
	}

	status := domain.StatusPending
	if mark == 'x' || mark == 'X' {
		status = domain.StatusCompleted
	} else if mark != ' ' {
		return domain.Task{}, false, false, fmt.Errorf("malformed checkbox in %q", line)
	}

	return domain.Task{ID: id, Title: title, Status: status}, indented, true, nil
}
