// Package git answers the two questions this tool has about a repository
// (does it exist, does it have pending changes) and performs the two
// operations it needs (read diffs, create a commit). Repository detection
// and status go through go-git; diff text and the commit itself come from
// the git binary, which owns those semantics.
package git

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNotARepository is returned when the working directory is not inside a
// git repository.
var ErrNotARepository = errors.New("not a git repository")

// Options configures a Client. The zero value operates on the process
// working directory.
type Options struct {
	Dir     string
	Verbose bool
	Logger  io.Writer
}

// Client is a thin wrapper over one repository.
type Client struct {
	dir string
	run runner
}

func NewClient(opts Options) *Client {
	return &Client{
		dir: opts.Dir,
		run: runner{Dir: opts.Dir, Verbose: opts.Verbose, Logger: opts.Logger},
	}
}

// HasChanges reports whether the working tree differs from HEAD, counting
// untracked files. Returns ErrNotARepository when there is no repository at
// or above the client directory.
func (c *Client) HasChanges() (bool, error) {
	dir := c.dir
	if dir == "" {
		dir = "."
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return false, ErrNotARepository
		}
		return false, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	return !status.IsClean(), nil
}

// StagedDiff returns the unified diff of staged changes.
func (c *Client) StagedDiff() (string, error) {
	return c.diff("diff", "--staged")
}

// UnstagedDiff returns the unified diff of unstaged changes.
func (c *Client) UnstagedDiff() (string, error) {
	return c.diff("diff")
}

func (c *Client) diff(args ...string) (string, error) {
	res, err := c.run.Run(args...)
	if err != nil {
		return "", fmt.Errorf("failed to execute git %s: %w", args[0], err)
	}
	if !utf8.Valid(res.Stdout) {
		return "", errors.New("git diff produced output that is not valid UTF-8")
	}
	return string(res.Stdout), nil
}

// Commit creates a commit with the given message. The message is passed as
// a single argument vector element, so embedded quotes and newlines reach
// git unmodified and no shell quoting is involved.
func (c *Client) Commit(message string) error {
	res, err := c.run.Run("commit", "-m", message)
	if err != nil {
		if stderr := res.StderrString(true); stderr != "" {
			return fmt.Errorf("git commit failed: %s: %w", stderr, err)
		}
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}
