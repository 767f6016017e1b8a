package testutil

import (
	"context"
	"errors"
)

// MockLinkService is a mock implementation of ports.LinkService.
type MockLinkService struct {
	LinkFunc  func(ctx context.Context, revision string) (string, error)
	Revisions []string
}

func (m *MockLinkService) Link(ctx context.Context, revision string) (string, error) {
	m.Revisions = append(m.Revisions, revision)
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, revision)
	}
	return "", errors.New("MockLinkService: LinkFunc not implemented")
}
