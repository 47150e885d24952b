package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okikae/mdtask/internal/domain"
)

// Render serializes the document to its canonical Markdown form.
// Render and Parse round-trip: Parse(Render(doc)) yields an equal document.
func Render(doc *domain.Document) (string, error) {
	var b strings.Builder

	if doc.Meta != (domain.Meta{}) {
		data, err := yaml.Marshal(doc.Meta)
		if err != nil {
			return "", fmt.Errorf("marshal frontmatter: %w", err)
		}
		b.WriteString("---\n")
		b.Write(data)
		b.WriteString("---\n\n")
	}

	b.WriteString(headingFiles)
	b.WriteString("\n\n")
	for _, f := range doc.Files {
		if f.Description == "" {
			fmt.Fprintf(&b, "- `%s`\n", f.Path)
		} else {
			fmt.Fprintf(&b, "- `%s` - %s\n", f.Path, f.Description)
		}
	}
	if len(doc.Files) > 0 {
		b.WriteString("\n")
	}

	if len(doc.Notes) > 0 {
		b.WriteString(headingNotes)
		b.WriteString("\n\n")
		for _, n := range doc.Notes {
			b.WriteString(n)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(headingTasks)
	b.WriteString("\n\n")
	for i := range doc.Tasks {
		parent := &doc.Tasks[i]
		fmt.Fprintf(&b, "- %s %s %s\n", parent.Status.Checkbox(), parent.ID, parent.Title)
		for j := range parent.Subtasks {
			sub := &parent.Subtasks[j]
			fmt.Fprintf(&b, "  - %s %s %s\n", sub.Status.Checkbox(), sub.ID, sub.Title)
		}
	}

	return b.String(), nil
}
