/*
Package keywords holds the help documents that are compiled into the binary
and shown by "help --keyword".
*/
package keywords

import (
	_ "embed"

	"github.com/AntonioJCosta/trove/internal/core/domain/keyword"
	"github.com/AntonioJCosta/trove/internal/core/ports"
)

var (
	//go:embed docs/bookmarks.md
	bookmarksDoc string
	//go:embed docs/config.md
	configDoc string
	//go:embed docs/filesets.md
	filesetsDoc string
	//go:embed docs/glossary.md
	glossaryDoc string
	//go:embed docs/revsets.md
	revsetsDoc string
	//go:embed docs/templates.md
	templatesDoc string
	//go:embed docs/tutorial.md
	tutorialDoc string
)

// Registry is the fixed, ordered list of help keywords.
type Registry struct {
	entries []keyword.Keyword
}

// NewRegistry returns the built-in keyword registry.
func NewRegistry() ports.KeywordRegistry {
	return &Registry{entries: []keyword.Keyword{
		{Name: "bookmarks", Description: "Named pointers to revisions (similar to Git's branches)", Content: bookmarksDoc},
		{Name: "config", Description: "How and where to set configuration options", Content: configDoc},
		{Name: "filesets", Description: "A functional language for selecting a set of files", Content: filesetsDoc},
		{Name: "glossary", Description: "Definitions of various terms", Content: glossaryDoc},
		{Name: "revsets", Description: "A functional language for selecting a set of revisions", Content: revsetsDoc},
		{Name: "templates", Description: "A functional language to customize command output", Content: templatesDoc},
		{Name: "tutorial", Description: "Show a tutorial to get started with trove", Content: tutorialDoc},
	}}
}

// Keywords returns a copy of every keyword in display order.
func (r *Registry) Keywords() []keyword.Keyword {
	out := make([]keyword.Keyword, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup is an exact, case-sensitive match on the keyword name.
func (r *Registry) Lookup(name string) (keyword.Keyword, bool) {
	for _, k := range r.entries {
		if k.Name == name {
			return k, true
		}
	}
	return keyword.Keyword{}, false
}
