package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

// Client performs branch operations against a single working tree.
// The working tree is the one shared mutable resource of a comparison
// run, so callers must serialize checkouts against anything that reads
// the tree.
type Client struct {
	dir    string
	runner proc.Runner
}

// NewClient creates a client bound to the given working tree.
func NewClient(dir string, runner proc.Runner) *Client {
	return &Client{dir: dir, runner: runner}
}

// CheckoutError reports a failed branch switch.
type CheckoutError struct {
	Branch string
	Stderr string
	Err    error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("git checkout %s failed: %v", e.Branch, e.Err)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

func (c *Client) run(ctx context.Context, args ...string) (proc.Result, error) {
	return c.runner.Run(ctx, "git", args, proc.Options{
		Dir: c.dir,
		Env: []string{"GIT_TERMINAL_PROMPT=0"},
	})
}

// Checkout switches the working tree to the named branch.
func (c *Client) Checkout(ctx context.Context, branch string) error {
	res, err := c.run(ctx, "checkout", branch)
	if err != nil {
		return &CheckoutError{Branch: branch, Stderr: res.Stderr, Err: err}
	}
	return nil
}

// CheckoutPrevious returns to the branch that was checked out before
// the last switch. This also works from the detached HEAD state CI
// checkouts leave behind, where the original branch has no local name.
func (c *Client) CheckoutPrevious(ctx context.Context) error {
	res, err := c.run(ctx, "checkout", "-")
	if err != nil {
		return &CheckoutError{Branch: "-", Stderr: res.Stderr, Err: err}
	}
	return nil
}

// CurrentBranch returns the name of the currently checked-out branch,
// or the empty string on a detached HEAD.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("git branch --show-current failed: %w", err)
	}
	return strings.TrimSpace(res.Stdout), nil
}
