/*
Package userconfig loads the layered TOML and YAML configuration files.
*/
package userconfig

import (
	"maps"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
	"github.com/AntonioJCosta/trove/internal/core/domain/settings"
	"github.com/sirupsen/logrus"
)

// UISettings controls the terminal output.
type UISettings struct {
	Color    string
	Paginate string
	Pager    string
}

// HelpSettings controls the help command.
type HelpSettings struct {
	RenderMarkdown bool
}

// Config is the merged result of every configuration layer.
// It implements ports.AliasTableProvider and ports.ConfigSourceProvider.
type Config struct {
	UI   UISettings
	Help HelpSettings

	aliases alias.Table
	sources []settings.Source
}

/*
Load reads the user configuration and then the repository configuration
found by searching upward from workingDir. Values from later files replace
earlier ones; aliases are replaced by name. Missing files are skipped.
*/
func Load(workingDir string) (*Config, error) {
	var sources []settings.Source
	for _, path := range userConfigPaths() {
		sources = append(sources, settings.Source{Path: path, Scope: settings.ScopeUser})
	}
	if path, ok := findRepoConfig(workingDir); ok {
		sources = append(sources, settings.Source{Path: path, Scope: settings.ScopeRepo})
	}
	return loadSources(sources)
}

// LoadFiles reads exactly the given files, in order of increasing precedence.
func LoadFiles(paths ...string) (*Config, error) {
	sources := make([]settings.Source, len(paths))
	for i, path := range paths {
		sources[i] = settings.Source{Path: path, Scope: settings.ScopeUser}
	}
	return loadSources(sources)
}

func loadSources(sources []settings.Source) (*Config, error) {
	cfg := &Config{aliases: alias.Table{}}
	for i := range sources {
		l, found, err := readLayer(sources[i].Path)
		if err != nil {
			return nil, err
		}
		sources[i].Exists = found
		if !found {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"path":    sources[i].Path,
			"aliases": len(l.aliases),
		}).Debug("loaded config file")
		cfg.merge(l)
	}
	cfg.sources = sources
	return cfg, nil
}

func (c *Config) merge(l *layer) {
	if l.ui.Color != "" {
		c.UI.Color = l.ui.Color
	}
	if l.ui.Paginate != "" {
		c.UI.Paginate = l.ui.Paginate
	}
	if l.ui.Pager != "" {
		c.UI.Pager = l.ui.Pager
	}
	if l.renderMarkdown != nil {
		c.Help.RenderMarkdown = *l.renderMarkdown
	}
	maps.Copy(c.aliases, l.aliases)
}

// AliasTable returns a copy of the configured aliases.
func (c *Config) AliasTable() (alias.Table, error) {
	table := make(alias.Table, len(c.aliases))
	for name, args := range c.aliases {
		table[name] = append([]string{}, args...)
	}
	return table, nil
}

// Sources lists the files that were considered, in load order.
func (c *Config) Sources() []settings.Source {
	return append([]settings.Source(nil), c.sources...)
}
