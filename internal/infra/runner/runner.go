// Package runner provides test command execution.
package runner

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/okikae/mdtask/internal/domain"
)

// Client implements domain.TestRunner.
type Client struct{}

// NewClient creates a new test runner client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.TestRunner.
var _ domain.TestRunner = (*Client)(nil)

// Run executes command in dir via the shell. Success means exit code 0;
// the combined output is returned either way.
func (c *Client) Run(ctx context.Context, dir, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("run %q: %w", command, err)
	}
	return string(out), nil
}
