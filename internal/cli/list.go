package cli

import (
	"fmt"
	"io"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command for displaying the checklist.
func newListCommand(c *app.Container, taskFile *string) *cobra.Command {
	var filesOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"status"},
		Short:   "Show the task checklist",
		GroupID: groupTask,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Path: resolveTaskFile(c, *taskFile),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if filesOnly {
				printFiles(w, out.Document.Files)
				return nil
			}

			if out.Document.Meta.Title != "" {
				fmt.Fprintf(w, "%s\n\n", out.Document.Meta.Title)
			}
			printChecklist(w, out.Document.Tasks, out.Next)
			fmt.Fprintf(w, "\nProgress: %d/%d\n", out.Done, out.Total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&filesOnly, "files", false, "Show the Relevant Files ledger instead of the checklist")

	return cmd
}

// printChecklist prints the two-level checklist, marking the next pending task.
func printChecklist(w io.Writer, tasks []domain.Task, next *domain.Task) {
	marker := func(t *domain.Task) string {
		if next != nil && t.ID == next.ID {
			return " <- next"
		}
		return ""
	}
	for i := range tasks {
		parent := &tasks[i]
		fmt.Fprintf(w, "%s %s %s%s\n", parent.Status.Checkbox(), parent.ID, parent.Title, marker(parent))
		for j := range parent.Subtasks {
			sub := &parent.Subtasks[j]
			fmt.Fprintf(w, "  %s %s %s%s\n", sub.Status.Checkbox(), sub.ID, sub.Title, marker(sub))
		}
	}
}

// printFiles prints the Relevant Files ledger.
func printFiles(w io.Writer, files []domain.FileEntry) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No files recorded.")
		return
	}
	for _, f := range files {
		if f.Description != "" {
			fmt.Fprintf(w, "%s - %s\n", f.Path, f.Description)
		} else {
			fmt.Fprintln(w, f.Path)
		}
	}
}
