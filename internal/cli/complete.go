package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newCompleteCommand creates the complete command for checking off tasks.
func newCompleteCommand(c *app.Container, taskFile *string) *cobra.Command {
	var yes bool
	var ticket string

	cmd := &cobra.Command{
		Use:     "complete <id>",
		Short:   "Mark a sub-task as completed",
		GroupID: groupTask,
		Long: `Mark a sub-task as completed after confirmation.

Completing the last pending sub-task of a parent runs the completion
protocol: the test suite, staging of changed files, a cleanup sweep,
and a conventional commit. The parent is only checked off when every
step succeeds. If a step fails, fix the cause and re-run complete with
the parent id to retry the protocol.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes {
				ok, err := c.Prompter.Confirm(fmt.Sprintf("Mark task %s complete?", id))
				if err != nil {
					return err
				}
				if !ok {
					return domain.ErrApprovalDenied
				}
			}

			uc, err := c.CompleteTaskUseCase()
			if err != nil {
				return err
			}
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				Path:   resolveTaskFile(c, *taskFile),
				TaskID: id,
				Ticket: ticket,
			})
			if err != nil {
				reportProtocolFailure(cmd.ErrOrStderr(), err, out)
				return err
			}

			printCompletion(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&ticket, "ticket", "", "Ticket reference for the commit message")

	return cmd
}

// printCompletion prints the result of a completed task and, when the
// protocol ran, its outcome.
func printCompletion(w io.Writer, out *usecase.CompleteTaskOutput) {
	fmt.Fprintf(w, "Completed %s %s\n", out.Task.ID, out.Task.Title)
	if !out.ParentCompleted {
		return
	}
	fmt.Fprintf(w, "Parent %s completed.\n", out.ParentID)
	for _, removed := range out.Removed {
		fmt.Fprintf(w, "Removed %s\n", removed)
	}
	if out.CommitHash != "" {
		fmt.Fprintf(w, "Committed %s\n", out.CommitHash)
	}
}

// reportProtocolFailure explains which protocol step failed and what to
// do next. Test failures include the runner output.
func reportProtocolFailure(w io.Writer, err error, out *usecase.CompleteTaskOutput) {
	var stepErr *domain.ProtocolStepError
	if !errors.As(err, &stepErr) {
		return
	}
	if stepErr.Step == domain.StepTest && out != nil && out.TestOutput != "" {
		fmt.Fprintln(w, out.TestOutput)
	}
	fmt.Fprintf(w, "Completion protocol failed at the %s step: %v\n", stepErr.Step, stepErr.Cause)
	fmt.Fprintln(w, "Fix the cause and re-run complete with the parent id to retry.")
}
