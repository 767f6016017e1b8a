package testutil

import "github.com/AntonioJCosta/trove/internal/core/domain/settings"

// MockConfigSourceProvider returns a fixed list of config sources.
type MockConfigSourceProvider struct {
	SourceList []settings.Source
}

func (m *MockConfigSourceProvider) Sources() []settings.Source {
	return m.SourceList
}
