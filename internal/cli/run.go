package cli

import (
	"errors"
	"fmt"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command for the gated work loop.
func newRunCommand(c *app.Container, taskFile *string) *cobra.Command {
	var ticket string

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Work through pending tasks one at a time",
		GroupID: groupTask,
		Long: `Work through the checklist one sub-task at a time.

For each pending sub-task the command shows the task and asks for
permission to mark it complete. Answering anything but yes stops the
loop with the checklist unchanged, so work never continues without
an explicit go-ahead. The loop also stops when a completion protocol
step fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := resolveTaskFile(c, *taskFile)
			w := cmd.OutOrStdout()

			next := c.NextTaskUseCase()
			for {
				nextOut, err := next.Execute(cmd.Context(), usecase.NextTaskInput{Path: path})
				if errors.Is(err, domain.ErrNoPendingTasks) {
					fmt.Fprintln(w, "All tasks completed.")
					return nil
				}
				if err != nil {
					return err
				}

				if nextOut.Parent != nil {
					fmt.Fprintf(w, "\n%s %s\n", nextOut.Parent.ID, nextOut.Parent.Title)
				}
				fmt.Fprintf(w, "-> %s %s (%d/%d done)\n", nextOut.Task.ID, nextOut.Task.Title, nextOut.Done, nextOut.Total)

				ok, err := c.Prompter.Confirm(fmt.Sprintf("Mark %s complete and continue?", nextOut.Task.ID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(w, "Stopped. The checklist is unchanged.")
					return nil
				}

				uc, err := c.CompleteTaskUseCase()
				if err != nil {
					return err
				}
				out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
					Path:   path,
					TaskID: nextOut.Task.ID,
					Ticket: ticket,
				})
				if err != nil {
					reportProtocolFailure(cmd.ErrOrStderr(), err, out)
					return err
				}
				printCompletion(w, out)
			}
		},
	}

	cmd.Flags().StringVar(&ticket, "ticket", "", "Ticket reference for protocol commits")

	return cmd
}
