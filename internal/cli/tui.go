package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okikae/mdtask/internal/app"
	"github.com/okikae/mdtask/internal/tui"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive checklist.
func newTUICommand(c *app.Container, taskFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Short:   "Launch the interactive checklist",
		GroupID: groupTask,
		Long:    `Launch the interactive terminal checklist for working through tasks.`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			model := tui.New(c, resolveTaskFile(c, *taskFile))
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
