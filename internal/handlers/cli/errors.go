package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/trove/internal/handlers/ui"
)

// usageError is an invalid invocation detected before any work is done.
type usageError struct {
	msg  string
	hint string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) Hint() string {
	return e.hint
}

type hinter interface {
	Hint() string
}

// PrintError writes err, and its hint when it carries one, to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.ErrorColor("Error:"), err)

	var h hinter
	if errors.As(err, &h) && h.Hint() != "" {
		fmt.Fprintf(w, "%s %s\n", ui.HintColor("Hint:"), h.Hint())
	}
}
