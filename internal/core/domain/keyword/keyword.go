/*
Package keyword defines help topics that document concepts rather than
commands.
*/
package keyword

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by errors reporting an unknown keyword.
var ErrNotFound = errors.New("keyword not found")

/*
Keyword is a static documentation topic. Keywords are compiled into the
binary and never change at runtime.
*/
type Keyword struct {
	Name        string
	Description string
	Content     string
}

// NotFoundError reports a keyword name without a registry entry.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no help found for keyword %q", e.Name)
	}
	return fmt.Sprintf("no help found for keyword %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
