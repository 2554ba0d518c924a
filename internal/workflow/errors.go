package workflow

import "errors"

// Sentinel errors for the clean early-exit conditions. The command layer
// maps these to an informational message and exit code 0; everything
// else bubbles up as a hard failure.
var (
	// ErrNotRepository means the guard found no git work tree. This one
	// is fatal, not a clean exit.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNoChanges means neither the index nor the working tree has
	// anything to commit.
	ErrNoChanges = errors.New("no changes detected")

	// ErrNothingStaged means the staging phase finished with an empty
	// index, so there is nothing meaningful to commit.
	ErrNothingStaged = errors.New("no files staged for commit")

	// ErrAborted means the user declined a confirmation required to
	// proceed.
	ErrAborted = errors.New("commit cancelled")
)
