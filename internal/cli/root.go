// Package cli provides the command-line interface for mdtask.
package cli

import (
	"github.com/okikae/mdtask/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// NewRootCommand creates the root command for mdtask.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var taskFile string

	root := &cobra.Command{
		Use:   "mdtask",
		Short: "Markdown task list workflow CLI",
		Long: `mdtask manages a two-level task checklist stored in a Markdown file.

Tasks are worked one at a time: 'mdtask next' shows the next pending
sub-task, and 'mdtask complete <id>' checks it off. When the last
sub-task of a parent completes, the completion protocol runs: the test
suite, staging of changed files, a cleanup sweep, and a conventional
commit. The parent is only checked off if every step succeeds.

Run 'mdtask tui' for an interactive checklist.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&taskFile, "file", "f", "", "Task document path (default from config)")

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
	)

	root.AddCommand(
		newInitCommand(c, &taskFile),
		newNextCommand(c, &taskFile),
		newListCommand(c, &taskFile),
		newCompleteCommand(c, &taskFile),
		newAddCommand(c, &taskFile),
		newFilesCommand(c, &taskFile),
		newRunCommand(c, &taskFile),
		newTUICommand(c, &taskFile),
	)

	return root
}

// resolveTaskFile returns the document path, preferring the --file flag
// over the configured default.
func resolveTaskFile(c *app.Container, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Paths.TaskFile
}
