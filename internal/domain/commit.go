package domain

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// DefaultCommitTemplate renders the conventional multi-paragraph commit
// message used when a parent task completes: a typed summary line, a
// bullet list of the finished sub-tasks, and an optional ticket reference.
const DefaultCommitTemplate = `{{.Type}}: {{.Summary}}

Completes task {{.TaskID}} in {{.Document}}.
{{- if .Details}}

{{range .Details}}- {{.}}
{{end}}{{- end}}
{{- if .Ticket}}

Related to {{.Ticket}}
{{- end}}`

// CommitData holds the values available to the commit message template.
type CommitData struct {
	Type     string   // Conventional commit type, e.g. "feat"
	Summary  string   // Parent task title
	TaskID   string   // Parent task id, e.g. "2.0"
	Document string   // Task document file name
	Ticket   string   // Ticket reference, may be empty
	Details  []string // Titles of the completed sub-tasks
}

// BuildCommitMessage renders the commit message template with data.
// An empty tmpl falls back to DefaultCommitTemplate.
func BuildCommitMessage(tmpl string, data CommitData) (string, error) {
	if tmpl == "" {
		tmpl = DefaultCommitTemplate
	}
	t, err := template.New("commit").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse commit template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render commit message: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}
