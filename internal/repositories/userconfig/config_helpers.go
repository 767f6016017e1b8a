package userconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
	"github.com/BurntSushi/toml"
	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

// fileSchema mirrors the on-disk layout shared by the TOML and YAML formats.
type fileSchema struct {
	UI struct {
		Color    string `toml:"color" yaml:"color"`
		Paginate string `toml:"paginate" yaml:"paginate"`
		Pager    string `toml:"pager" yaml:"pager"`
	} `toml:"ui" yaml:"ui"`
	Help struct {
		RenderMarkdown *bool `toml:"render-markdown" yaml:"render-markdown"`
	} `toml:"help" yaml:"help"`
	// Values are either a list of strings or a single shell-like string.
	Aliases map[string]any `toml:"aliases" yaml:"aliases"`
}

type layer struct {
	ui             UISettings
	renderMarkdown *bool
	aliases        alias.Table
}

// readLayer reports found == false for a file that does not exist.
func readLayer(path string) (*layer, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var schema fileSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &schema)
	default:
		err = decodeTOML(data, &schema)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	l := &layer{
		ui: UISettings{
			Color:    schema.UI.Color,
			Paginate: schema.UI.Paginate,
			Pager:    schema.UI.Pager,
		},
		renderMarkdown: schema.Help.RenderMarkdown,
		aliases:        make(alias.Table, len(schema.Aliases)),
	}
	for name, value := range schema.Aliases {
		args, err := aliasArgs(value)
		if err != nil {
			return nil, false, fmt.Errorf("invalid alias %q in %s: %w", name, path, err)
		}
		l.aliases[name] = args
	}
	return l, true, nil
}

func decodeTOML(data []byte, schema *fileSchema) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(schema)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, schema *fileSchema) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(schema); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// aliasArgs accepts ["log", "-r", "@"] or "log -r @".
func aliasArgs(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		args, err := shlex.Split(v)
		if err != nil {
			return nil, fmt.Errorf("cannot split %q: %w", v, err)
		}
		if args == nil {
			args = []string{}
		}
		return args, nil
	case []any:
		args := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("argument %d is %T, expected a string", i, item)
			}
			args[i] = s
		}
		return args, nil
	default:
		return nil, fmt.Errorf("expected a list of strings or a string, got %T", value)
	}
}
