// Package git wraps the git binary for the handful of plumbing and
// porcelain commands the wizard needs. Every call shells out; nothing
// here touches the repository directly.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Options configures a Client.
type Options struct {
	// Verbose echoes every git invocation to stderr.
	Verbose bool
	// WorkDir runs git in the given directory instead of the process cwd.
	WorkDir string
	// Context cancels in-flight git processes. Defaults to context.Background.
	Context context.Context
}

// Client executes git commands.
type Client struct {
	opts Options
	ctx  context.Context
}

func NewClient(opts Options) *Client {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &Client{opts: opts, ctx: ctx}
}

// Result carries the captured output of a finished git command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (c *Client) run(args ...string) (Result, error) {
	if c.opts.Verbose {
		fmt.Fprintln(os.Stderr, "+ git "+strings.Join(args, " "))
	}

	cmd := exec.CommandContext(c.ctx, "git", args...)
	if c.opts.WorkDir != "" {
		cmd.Dir = c.opts.WorkDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}

// wrapError builds an error message that prefers git stderr output when present.
func wrapError(action string, result Result, err error) error {
	errMsg := strings.TrimSpace(string(result.Stderr))
	if errMsg != "" {
		return fmt.Errorf("%s: %s: %w", action, errMsg, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// IsRepository reports whether the working directory is inside a git work tree.
func (c *Client) IsRepository() bool {
	_, err := c.run("rev-parse", "--is-inside-work-tree")
	return err == nil
}

// Status returns the parsed porcelain status of the working tree,
// covering both staged and unstaged changes.
func (c *Client) Status() ([]StatusEntry, error) {
	result, err := c.run("status", "--porcelain")
	if err != nil {
		return nil, wrapError("failed to get git status", result, err)
	}
	return ParseStatus(string(result.Stdout)), nil
}

// StagedFiles returns the paths currently staged for commit.
func (c *Client) StagedFiles() ([]string, error) {
	result, err := c.run("diff", "--cached", "--name-only")
	if err != nil {
		return nil, wrapError("failed to list staged files", result, err)
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(result.Stdout)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// AddAll stages every change in the working tree.
func (c *Client) AddAll() error {
	result, err := c.run("add", "-A")
	if err != nil {
		return wrapError("git add failed", result, err)
	}
	return nil
}

// Add stages the given paths one at a time. Each path is passed to git
// as a literal argument after "--" so nothing is shell-interpreted.
func (c *Client) Add(paths ...string) error {
	for _, path := range paths {
		result, err := c.run("add", "--", path)
		if err != nil {
			return wrapError(fmt.Sprintf("failed to stage %q", path), result, err)
		}
	}
	return nil
}

// DiffStat returns the diffstat of the staged changes.
func (c *Client) DiffStat() (string, error) {
	result, err := c.run("diff", "--cached", "--stat")
	if err != nil {
		return "", wrapError("failed to get staged diffstat", result, err)
	}
	return strings.TrimRight(string(result.Stdout), "\n"), nil
}

// Commit creates a commit using the given file as the full message,
// appending flags verbatim. The child process inherits the terminal so
// hook output and any editor spawned by --amend behave normally.
func (c *Client) Commit(messageFile string, flags ...string) error {
	args := append([]string{"commit", "-F", messageFile}, flags...)
	if c.opts.Verbose {
		fmt.Fprintln(os.Stderr, "+ git "+strings.Join(args, " "))
	}

	cmd := exec.CommandContext(c.ctx, "git", args...)
	if c.opts.WorkDir != "" {
		cmd.Dir = c.opts.WorkDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}
