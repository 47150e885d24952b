// Package cleanup removes temporary artifacts by caller-supplied globs.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okikae/mdtask/internal/domain"
)

// Client implements domain.Cleaner.
type Client struct{}

// NewClient creates a new cleaner client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.Cleaner.
var _ domain.Cleaner = (*Client)(nil)

// Sweep removes files matching the glob patterns relative to dir and
// returns the removed paths (relative to dir). Patterns resolving outside
// dir are rejected; an empty pattern list is a no-op.
func (c *Client) Sweep(dir string, patterns []string) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve sweep root: %w", err)
	}

	var removed []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return removed, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				return removed, fmt.Errorf("pattern %q escapes %s", pattern, dir)
			}
			info, err := os.Stat(match)
			if err != nil {
				continue // already gone
			}
			if info.IsDir() {
				// Directories are never swept; patterns name files.
				continue
			}
			if err := os.Remove(match); err != nil {
				return removed, fmt.Errorf("remove %s: %w", rel, err)
			}
			removed = append(removed, rel)
		}
	}
	return removed, nil
}
