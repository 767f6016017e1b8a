/*
Package alias defines the core domain entities for configured command aliases.
*/
package alias

import (
	"errors"
	"fmt"
)

// ErrCyclicAlias is matched by errors reporting an alias whose expansion
// refers back to itself, directly or through other aliases.
var ErrCyclicAlias = errors.New("recursive alias definition")

// ErrExtraneousArguments is matched by errors reporting an alias that was
// followed by further arguments where only the alias name is allowed.
var ErrExtraneousArguments = errors.New("invalid arguments following alias")

/*
Table maps an alias name to the command-line tokens it was configured with.
It is read-only to the resolution engine.
*/
type Table map[string][]string

// Has reports whether name is a configured alias.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Names returns the alias names in no particular order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	return names
}

/*
Resolution is the result of resolving a single alias name.
Original holds the definition exactly as configured; Expanded has every
leading alias replaced by its own expansion.
*/
type Resolution struct {
	Name     string
	Original []string
	Expanded []string
}

// Entry describes one configured alias for listings.
type Entry struct {
	Name       string
	Definition []string
	Expansion  []string
	Err        error // set when the alias cannot be expanded
}

// CyclicAliasError reports the alias name that was visited twice during a
// single expansion.
type CyclicAliasError struct {
	Name string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("recursive alias definition involving %q", e.Name)
}

func (e *CyclicAliasError) Is(target error) bool {
	return target == ErrCyclicAlias
}

// ExtraneousArgumentsError reports an alias followed by more arguments.
type ExtraneousArgumentsError struct {
	Alias string
	Extra []string
}

func (e *ExtraneousArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments following alias %q", e.Alias)
}

func (e *ExtraneousArgumentsError) Is(target error) bool {
	return target == ErrExtraneousArguments
}
