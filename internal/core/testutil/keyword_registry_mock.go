package testutil

import "github.com/AntonioJCosta/trove/internal/core/domain/keyword"

// MockKeywordRegistry is a slice-backed implementation of ports.KeywordRegistry.
type MockKeywordRegistry struct {
	Entries []keyword.Keyword
}

func (m *MockKeywordRegistry) Keywords() []keyword.Keyword {
	return m.Entries
}

func (m *MockKeywordRegistry) Lookup(name string) (keyword.Keyword, bool) {
	for _, k := range m.Entries {
		if k.Name == name {
			return k, true
		}
	}
	return keyword.Keyword{}, false
}
