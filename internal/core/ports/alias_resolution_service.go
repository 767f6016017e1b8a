package ports

import "github.com/AntonioJCosta/trove/internal/core/domain/alias"

// AliasResolutionService defines the contract for expanding configured aliases.
type AliasResolutionService interface {
	// Resolve expands the alias called name. ok is false, with a nil error,
	// when name is not a configured alias.
	Resolve(name string) (res alias.Resolution, ok bool, err error)

	// List returns every configured alias sorted by name. Aliases that cannot
	// be expanded are still listed, with Entry.Err set.
	List() ([]alias.Entry, error)
}
