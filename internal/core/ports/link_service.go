package ports

import "context"

// LinkService defines the contract for generating web links to commits.
type LinkService interface {
	// Link returns the URL of the commit that revision resolves to.
	Link(ctx context.Context, revision string) (string, error)
}
