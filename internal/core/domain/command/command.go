/*
Package command defines domain types for locating commands in the
command registry.
*/
package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSubcommand is matched by errors reporting a token that is not a
// known subcommand at a position where a subcommand is required.
var ErrInvalidSubcommand = errors.New("unrecognized subcommand")

// InvalidSubcommandError carries the unknown name, the command path under
// which it was looked up and close matches for a "did you mean" hint.
type InvalidSubcommandError struct {
	Name        string
	Parent      string
	Suggestions []string
}

func (e *InvalidSubcommandError) Error() string {
	msg := fmt.Sprintf("unrecognized subcommand %q", e.Name)
	if e.Parent != "" {
		msg = fmt.Sprintf("%s for %q", msg, e.Parent)
	}
	return msg
}

func (e *InvalidSubcommandError) Is(target error) bool {
	return target == ErrInvalidSubcommand
}

// Hint suggests similarly named subcommands, if any.
func (e *InvalidSubcommandError) Hint() string {
	if len(e.Suggestions) == 0 {
		return ""
	}
	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = fmt.Sprintf("'%s'", s)
	}
	return "a similar subcommand exists: " + strings.Join(quoted, ", ")
}
