package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Header
	Header   lipgloss.Style
	Progress lipgloss.Style

	// Checklist
	TaskNormal    lipgloss.Style
	TaskSelected  lipgloss.Style
	TaskCompleted lipgloss.Style
	Checkbox      lipgloss.Style
	CheckboxDone  lipgloss.Style

	// Status line
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style

	// Help
	Help lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		Progress: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		TaskCompleted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),
		Checkbox: lipgloss.NewStyle().
			Foreground(Colors.Warning),
		CheckboxDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Success),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Prompt: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}
