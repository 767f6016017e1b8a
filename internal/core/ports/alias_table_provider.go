package ports

import "github.com/AntonioJCosta/trove/internal/core/domain/alias"

// AliasTableProvider defines the contract for a source of alias definitions,
// such as a configuration file or the defaults shipped with the binary.
type AliasTableProvider interface {
	// AliasTable returns the aliases known to this source. A source with no
	// aliases returns an empty table and no error.
	AliasTable() (alias.Table, error)
}
