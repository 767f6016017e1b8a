package testutil

import (
	"errors"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
)

// MockAliasResolutionService is a mock implementation of ports.AliasResolutionService.
type MockAliasResolutionService struct {
	ResolveFunc func(name string) (alias.Resolution, bool, error)
	ListFunc    func() ([]alias.Entry, error)
}

func (m *MockAliasResolutionService) Resolve(name string) (alias.Resolution, bool, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(name)
	}
	return alias.Resolution{}, false, errors.New("MockAliasResolutionService: ResolveFunc not implemented")
}

func (m *MockAliasResolutionService) List() ([]alias.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, errors.New("MockAliasResolutionService: ListFunc not implemented")
}
