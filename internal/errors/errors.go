// Package errors provides sentinel errors and custom error types for the repovault application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoBranch indicates that no default branch could be resolved for a repository
	ErrNoBranch = errors.New("no default branch found")

	// ErrGitNotInstalled indicates that the git binary is not available on PATH
	ErrGitNotInstalled = errors.New("git is not installed")

	// ErrNotARepository indicates that a path is not a git working copy
	ErrNotARepository = errors.New("not a git repository")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// DiscoveryError represents a fatal failure while listing repositories from the provider.
// Discovery failure aborts the run: without a repository list there is nothing to process.
type DiscoveryError struct {
	User string
	Page int
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("repository discovery failed for user %s (page %d): %v", e.User, e.Page, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// NewDiscoveryError creates a new DiscoveryError
func NewDiscoveryError(user string, page int, err error) *DiscoveryError {
	return &DiscoveryError{User: user, Page: page, Err: err}
}

// PublishError represents a fatal failure while writing the backup artifact.
type PublishError struct {
	Destination string
	Err         error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to write backup artifact at %s: %v", e.Destination, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// NewPublishError creates a new PublishError
func NewPublishError(destination string, err error) *PublishError {
	return &PublishError{Destination: destination, Err: err}
}
