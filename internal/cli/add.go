package cli

import (
	"fmt"
	"strings"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for appending tasks.
func newAddCommand(c *app.Container, taskFile *string) *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:     "add <title>",
		Short:   "Append a parent task or sub-task",
		GroupID: groupTask,
		Long: `Append a task to the checklist.

Without --parent the title becomes a new parent task at the end of the
list. With --parent the title becomes a sub-task under that parent.
Ids are assigned automatically: parents get the next major number,
sub-tasks the next minor number under their parent.

Examples:
  mdtask add "Implement the parser"
  mdtask add --parent 2.0 "Handle empty input"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Path:     resolveTaskFile(c, *taskFile),
				ParentID: parentID,
				Title:    strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&parentID, "parent", "p", "", "Parent task id to add a sub-task under")

	return cmd
}
