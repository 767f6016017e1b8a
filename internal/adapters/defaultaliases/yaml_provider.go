package defaultaliases

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed default_aliases.yaml
var embeddedDefaultAliases []byte

type definition struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
}

// YAMLProvider implements the AliasTableProvider interface
// by reading the default aliases embedded in the binary.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider.
func NewYAMLProvider() ports.AliasTableProvider {
	return &YAMLProvider{}
}

// AliasTable parses the embedded aliases.
// Empty content yields an empty table and no error.
func (p *YAMLProvider) AliasTable() (alias.Table, error) {
	table := alias.Table{}
	if len(embeddedDefaultAliases) == 0 {
		return table, nil
	}

	var definitions []definition
	decoder := yaml.NewDecoder(bytes.NewReader(embeddedDefaultAliases))
	decoder.KnownFields(true)
	if err := decoder.Decode(&definitions); err != nil {
		// A document made only of comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		return nil, fmt.Errorf("failed to unmarshal embedded default aliases: %w", err)
	}

	for _, d := range definitions {
		if d.Name == "" {
			return nil, fmt.Errorf("failed to load embedded default aliases: entry with args %q has no name", d.Args)
		}
		args := d.Args
		if args == nil {
			args = []string{}
		}
		table[d.Name] = args
	}
	return table, nil
}
