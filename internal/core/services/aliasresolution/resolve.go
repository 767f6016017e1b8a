package aliasresolution

import (
	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
)

// Resolve expands the alias called name using table.
// It returns ok == false when name is not an alias. The returned slices never
// share memory with table.
func Resolve(table alias.Table, name string) (alias.Resolution, bool, error) {
	definition, ok := table[name]
	if !ok {
		return alias.Resolution{}, false, nil
	}

	seen := make(map[string]struct{})
	expanded, err := expandRecursively(table, name, seen)
	if err != nil {
		return alias.Resolution{}, true, err
	}

	return alias.Resolution{
		Name:     name,
		Original: cloneTokens(definition),
		Expanded: expanded,
	}, true, nil
}

// expandRecursively replaces a leading alias in the definition of name with
// its own expansion. seen is shared by the whole top-level call so that a
// name visited anywhere in the chain is reported as a cycle.
func expandRecursively(table alias.Table, name string, seen map[string]struct{}) ([]string, error) {
	if _, visited := seen[name]; visited {
		return nil, &alias.CyclicAliasError{Name: name}
	}
	seen[name] = struct{}{}

	definition := table[name]
	if len(definition) > 0 && table.Has(definition[0]) {
		expanded, err := expandRecursively(table, definition[0], seen)
		if err != nil {
			return nil, err
		}
		return append(expanded, definition[1:]...), nil
	}
	return cloneTokens(definition), nil
}

func cloneTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
