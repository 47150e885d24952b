package domain

import (
	"context"
	"time"
)

// DocumentStore persists task documents.
type DocumentStore interface {
	// Exists reports whether a document exists at path.
	Exists(path string) (bool, error)

	// Load parses the document at path.
	Load(path string) (*Document, error)

	// Save serializes the document back to doc.Path.
	Save(doc *Document) error
}

// TestRunner runs the project's test command.
type TestRunner interface {
	// Run executes command in dir. A non-nil error means the command
	// could not run or exited non-zero; output is returned either way.
	Run(ctx context.Context, dir, command string) (output string, err error)
}

// Git provides the version control operations of the completion protocol.
type Git interface {
	// ChangedFiles returns repository-relative paths with uncommitted
	// changes (staged, unstaged, or untracked).
	ChangedFiles() ([]string, error)

	// StageAll stages every change in the worktree, deletions included.
	StageAll() error

	// Commit records the staged changes and returns the commit hash.
	Commit(message string) (string, error)
}

// Cleaner removes temporary artifacts. Patterns are caller-supplied;
// nothing is ever inferred.
type Cleaner interface {
	// Sweep removes files matching the glob patterns relative to dir
	// and returns the removed paths.
	Sweep(dir string, patterns []string) (removed []string, err error)
}

// Prompter is the blocking interactive channel to the human operator.
type Prompter interface {
	// Confirm asks a yes/no question and returns true only on an
	// explicit affirmative answer. There is no timeout.
	Confirm(question string) (bool, error)

	// Ask poses a free-form question and returns the trimmed answer.
	Ask(question string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + repo).
	Load() (*Config, error)
}

// Logger records workflow events to the log file.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log output.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
