package ports

import "github.com/AntonioJCosta/trove/internal/core/domain/keyword"

// KeywordRegistry defines the contract for the compiled-in help topics.
type KeywordRegistry interface {
	// Keywords returns all topics in display order.
	Keywords() []keyword.Keyword
	// Lookup finds a topic by exact name.
	Lookup(name string) (keyword.Keyword, bool)
}
