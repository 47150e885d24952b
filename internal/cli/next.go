package cli

import (
	"errors"
	"fmt"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newNextCommand creates the next command for showing the next pending task.
func newNextCommand(c *app.Container, taskFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "next",
		Short:   "Show the next pending sub-task",
		GroupID: groupTask,
		Long: `Show the first pending sub-task in document order.

Tasks are worked strictly top to bottom, one sub-task at a time.
When every task is completed the command reports that instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.NextTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NextTaskInput{
				Path: resolveTaskFile(c, *taskFile),
			})
			if errors.Is(err, domain.ErrNoPendingTasks) {
				fmt.Fprintln(cmd.OutOrStdout(), "All tasks completed.")
				return nil
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Parent != nil {
				fmt.Fprintf(w, "Parent: %s %s\n", out.Parent.ID, out.Parent.Title)
			}
			fmt.Fprintf(w, "Next:   %s %s\n", out.Task.ID, out.Task.Title)
			fmt.Fprintf(w, "Progress: %d/%d\n", out.Done, out.Total)
			return nil
		},
	}

	return cmd
}
