package domain

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	File    string        `toml:"file,omitempty"` // Default task document path
	Test    TestConfig    `toml:"test"`
	Cleanup CleanupConfig `toml:"cleanup"`
	Commit  CommitConfig  `toml:"commit"`
	Log     LogConfig     `toml:"log"`
}

// TestConfig holds settings for the protocol's test step from [test].
type TestConfig struct {
	Command string `toml:"command,omitempty"` // Test command run via sh -c
}

// CleanupConfig holds settings for the protocol's cleanup step from [cleanup].
type CleanupConfig struct {
	Patterns []string `toml:"patterns,omitempty"` // Glob patterns of temporary artifacts
}

// CommitConfig holds settings for the protocol's commit step from [commit].
type CommitConfig struct {
	Type      string `toml:"type,omitempty"`       // Conventional commit type prefix
	Template  string `toml:"template,omitempty"`   // Overrides DefaultCommitTemplate
	AskTicket bool   `toml:"ask_ticket,omitempty"` // Prompt for a ticket id when none is set
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		File: DefaultTaskFileName,
		Commit: CommitConfig{
			Type: "feat",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
