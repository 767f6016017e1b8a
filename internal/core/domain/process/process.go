/*
Package process defines the outcomes of running external programs.
*/
package process

import (
	"errors"
	"fmt"
)

// ErrExecutableNotFound is returned when the program is not in PATH.
var ErrExecutableNotFound = errors.New("executable not found")

// ExitError reports a program that ran but exited unsuccessfully.
type ExitError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
}
