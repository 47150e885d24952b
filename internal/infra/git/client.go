// Package git provides the version control operations of the completion
// protocol, implemented on go-git.
package git

import (
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/okikae/mdtask/internal/domain"
)

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)

// Client wraps a go-git repository.
type Client struct {
	repo  *gogit.Repository
	clock domain.Clock
}

// NewClient opens the repository containing dir.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return &Client{repo: repo, clock: domain.RealClock{}}, nil
}

// NewClientWithRepo creates a Client from an existing repository instance.
func NewClientWithRepo(repo *gogit.Repository, clock domain.Clock) *Client {
	return &Client{repo: repo, clock: clock}
}

// ChangedFiles returns repository-relative paths with uncommitted changes,
// untracked files included, sorted for stable output.
func (c *Client) ChangedFiles() ([]string, error) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}

	var paths []string
	for path, st := range status {
		if st.Staging == gogit.Unmodified && st.Worktree == gogit.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// StageAll stages every change in the worktree, deletions included.
func (c *Client) StageAll() error {
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes and returns the commit hash.
// Committing with nothing staged is an error; the caller surfaces it as a
// protocol step failure.
func (c *Client) Commit(message string) (string, error) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: c.signature(),
	})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return hash.String(), nil
}

// signature builds the commit author from git config, falling back to a
// tool identity when none is configured.
func (c *Client) signature() *object.Signature {
	sig := &object.Signature{
		Name:  "mdtask",
		Email: "mdtask@localhost",
		When:  c.clock.Now(),
	}
	cfg, err := c.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}
