// Package prompt provides the blocking interactive channel to the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okikae/mdtask/internal/domain"
)

// Client implements domain.Prompter over an io reader/writer pair.
type Client struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter bound to stdin/stdout.
func New() *Client {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a Prompter with custom streams, for testing.
func NewWithIO(in io.Reader, out io.Writer) *Client {
	return &Client{in: bufio.NewReader(in), out: out}
}

// Ensure Client implements domain.Prompter.
var _ domain.Prompter = (*Client)(nil)

// Confirm asks a yes/no question and blocks until the operator answers.
// Only an explicit "y" or "yes" (case-insensitive) counts as approval;
// anything else, including EOF, is a refusal.
func (c *Client) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N] ", question)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask poses a free-form question and returns the trimmed answer.
func (c *Client) Ask(question string) (string, error) {
	fmt.Fprintf(c.out, "%s ", question)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
