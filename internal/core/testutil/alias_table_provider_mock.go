package testutil

import (
	"errors"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
)

// MockAliasTableProvider is a mock implementation of ports.AliasTableProvider for testing.
type MockAliasTableProvider struct {
	AliasTableFunc func() (alias.Table, error)
}

func (m *MockAliasTableProvider) AliasTable() (alias.Table, error) {
	if m.AliasTableFunc != nil {
		return m.AliasTableFunc()
	}
	return nil, errors.New("MockAliasTableProvider: AliasTableFunc not implemented")
}

// StaticAliasTable returns a provider that always yields table.
func StaticAliasTable(table alias.Table) *MockAliasTableProvider {
	return &MockAliasTableProvider{
		AliasTableFunc: func() (alias.Table, error) { return table, nil },
	}
}
