package cli

import (
	"fmt"
	"strings"

	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/usecase"
	"github.com/spf13/cobra"
)

// newFilesCommand creates the files command group for the Relevant Files ledger.
func newFilesCommand(c *app.Container, taskFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Short:   "Manage the Relevant Files ledger",
		GroupID: groupTask,
		Long: `Manage the Relevant Files ledger of the task document.

The ledger tracks every file created or modified during the work,
each with a one-line description. Recording the same path again
updates its description in place.`,
	}

	cmd.AddCommand(
		newFilesRecordCommand(c, taskFile),
		newFilesListCommand(c, taskFile),
	)

	return cmd
}

// newFilesRecordCommand creates the files record command.
func newFilesRecordCommand(c *app.Container, taskFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "record <path> [description...]",
		Short: "Record a file in the ledger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RecordFileUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RecordFileInput{
				Path:        resolveTaskFile(c, *taskFile),
				FilePath:    args[0],
				Description: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s (%d files in ledger)\n", args[0], len(out.Files))
			return nil
		},
	}
}

// newFilesListCommand creates the files list command.
func newFilesListCommand(c *app.Container, taskFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Path: resolveTaskFile(c, *taskFile),
			})
			if err != nil {
				return err
			}
			printFiles(cmd.OutOrStdout(), out.Document.Files)
			return nil
		},
	}
}
