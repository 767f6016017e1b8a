package defaultaliases

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
)

func TestNewYAMLProvider(t *testing.T) {
	provider := NewYAMLProvider()

	if provider == nil {
		t.Fatalf("NewYAMLProvider() expected non-nil provider, got nil")
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
}

func TestYAMLProvider_AliasTable(t *testing.T) {
	validYAML := `
- name: gl
  args: [github, link]
- name: glp
  args: [gl, -r, "HEAD~1"]
`
	emptyArgsYAML := `
- name: nothing
`
	unknownFieldYAML := `
- name: gl
  args: [github, link]
  command: "github link"
`
	missingNameYAML := `
- args: [log]
`
	notAListYAML := `name: gl args: github`

	originalEmbeddedData := embeddedDefaultAliases

	tests := []struct {
		name                string
		contentToEmbed      []byte
		wantTable           alias.Table
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:           "nil content",
			contentToEmbed: nil,
			wantTable:      alias.Table{},
		},
		{
			name:           "comments only",
			contentToEmbed: []byte("# nothing here\n"),
			wantTable:      alias.Table{},
		},
		{
			name:           "empty list",
			contentToEmbed: []byte(`[]`),
			wantTable:      alias.Table{},
		},
		{
			name:           "valid aliases",
			contentToEmbed: []byte(validYAML),
			wantTable: alias.Table{
				"gl":  {"github", "link"},
				"glp": {"gl", "-r", "HEAD~1"},
			},
		},
		{
			name:           "alias without args",
			contentToEmbed: []byte(emptyArgsYAML),
			wantTable:      alias.Table{"nothing": {}},
		},
		{
			name:                "unknown field",
			contentToEmbed:      []byte(unknownFieldYAML),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal embedded default aliases",
		},
		{
			name:                "missing name",
			contentToEmbed:      []byte(missingNameYAML),
			wantErr:             true,
			wantErrorMsgSnippet: "has no name",
		},
		{
			name:                "not a list",
			contentToEmbed:      []byte(notAListYAML),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal embedded default aliases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embeddedDefaultAliases = tt.contentToEmbed
			t.Cleanup(func() {
				embeddedDefaultAliases = originalEmbeddedData
			})

			table, err := NewYAMLProvider().AliasTable()

			if (err != nil) != tt.wantErr {
				t.Fatalf("AliasTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("AliasTable() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if table != nil {
					t.Errorf("AliasTable() expected nil table on error, got %#v", table)
				}
				return
			}
			if !reflect.DeepEqual(table, tt.wantTable) {
				t.Errorf("AliasTable() = %#v, want %#v", table, tt.wantTable)
			}
		})
	}
}

func TestYAMLProvider_ShippedDefaults(t *testing.T) {
	table, err := NewYAMLProvider().AliasTable()
	if err != nil {
		t.Fatalf("AliasTable() unexpected error = %v", err)
	}
	for _, name := range []string{"aliases", "gl", "glp"} {
		if !table.Has(name) {
			t.Errorf("shipped defaults are missing alias %q", name)
		}
	}
}
