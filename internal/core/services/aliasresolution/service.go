package aliasresolution

import (
	"fmt"
	"sort"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type service struct {
	providers []ports.AliasTableProvider
}

// NewService creates a new alias resolution service.
// Providers are layered in order: an alias defined by a later provider
// replaces one of the same name from an earlier provider.
// It panics if no provider is given or any provider is nil.
func NewService(providers ...ports.AliasTableProvider) ports.AliasResolutionService {
	if len(providers) == 0 {
		panic("at least one alias table provider is required")
	}
	for _, p := range providers {
		if p == nil {
			panic("alias table provider cannot be nil")
		}
	}
	return &service{providers: providers}
}

// Resolve expands the alias called name against the merged alias table.
func (s *service) Resolve(name string) (alias.Resolution, bool, error) {
	table, err := s.table()
	if err != nil {
		return alias.Resolution{}, false, err
	}

	res, ok, err := Resolve(table, name)
	if err != nil {
		return alias.Resolution{}, ok, err
	}
	if ok {
		logrus.WithFields(logrus.Fields{
			"alias":    name,
			"original": res.Original,
			"expanded": res.Expanded,
		}).Debug("resolved alias")
	}
	return res, ok, nil
}

// List returns all aliases sorted by name along with their expansions.
func (s *service) List() ([]alias.Entry, error) {
	table, err := s.table()
	if err != nil {
		return nil, err
	}

	names := table.Names()
	sort.Strings(names)

	entries := make([]alias.Entry, 0, len(names))
	for _, name := range names {
		entry := alias.Entry{Name: name, Definition: cloneTokens(table[name])}
		res, _, err := Resolve(table, name)
		if err != nil {
			entry.Err = err
		} else {
			entry.Expansion = res.Expanded
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *service) table() (alias.Table, error) {
	merged := make(alias.Table)
	for _, p := range s.providers {
		t, err := p.AliasTable()
		if err != nil {
			return nil, fmt.Errorf("failed to load aliases: %w", err)
		}
		for name, definition := range t {
			merged[name] = definition
		}
	}
	return merged, nil
}
