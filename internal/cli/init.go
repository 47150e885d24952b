package cli

import (
	"fmt"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command for creating a task document.
func newInitCommand(c *app.Container, taskFile *string) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:     "init [file]",
		Short:   "Create a new task document",
		GroupID: groupSetup,
		Long: `Create a new Markdown task document with an empty checklist.

The document starts with a Relevant Files section and a Tasks section.
Add parent tasks first with 'mdtask add', then fill in their sub-tasks
with 'mdtask add --parent <id>'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveTaskFile(c, *taskFile)
			if len(args) == 1 {
				path = args[0]
			}
			uc := c.InitDocumentUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitDocumentInput{
				Path:  path,
				Title: title,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Document.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title for the frontmatter")

	return cmd
}
