package githublink

import (
	"errors"
	"fmt"
)

var (
	// ErrBadResult is returned when gh prints something that is not UTF-8.
	ErrBadResult = errors.New("failed to parse response from gh")
	// ErrRevisionNotFound is matched by *RevisionNotFoundError.
	ErrRevisionNotFound = errors.New("revision not found")
)

type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %q doesn't exist", e.Revision)
}

func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrRevisionNotFound
}

// CommandError reports gh exiting unsuccessfully.
type CommandError struct {
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("gh command failed with exit status %d: %s", e.ExitCode, e.Stderr)
}

// NotInstalledError reports that gh could not be run at all.
type NotInstalledError struct {
	Err error
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("gh failed with error: %v", e.Err)
}

func (e *NotInstalledError) Unwrap() error {
	return e.Err
}

func (e *NotInstalledError) Hint() string {
	return "Check the gh CLI is installed and `gh auth status` shows that you are logged in"
}
