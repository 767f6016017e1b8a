package cobraregistry

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/trove/internal/core/domain/command"
	"github.com/AntonioJCosta/trove/internal/core/services/commandpath"
	"github.com/spf13/cobra"
)

func newTestTree() *cobra.Command {
	noop := func(cmd *cobra.Command, args []string) {}

	root := &cobra.Command{Use: "trove", Short: "A version control tool"}
	root.PersistentFlags().String("color", "auto", "When to colorize output")
	root.PersistentFlags().Bool("no-pager", false, "Disable the pager")

	logCmd := &cobra.Command{Use: "log", Short: "Show revision history", Run: noop}
	logCmd.Flags().StringP("revisions", "r", "", "Which revisions to show")
	logCmd.Flags().Bool("no-graph", false, "Don't show the graph")

	bookmark := &cobra.Command{Use: "bookmark", Aliases: []string{"b"}, Short: "Manage bookmarks"}
	list := &cobra.Command{Use: "list", Aliases: []string{"l"}, Short: "List bookmarks", Run: noop}
	bookmark.AddCommand(list, &cobra.Command{Use: "create", Short: "Create a bookmark", Run: noop})

	root.AddCommand(logCmd, bookmark)
	return root
}

func TestNewRegistry_PanicsOnNilRoot(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewRegistry(nil) did not panic")
		}
	}()
	NewRegistry(nil)
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name            string
		path            []string
		wantName        string
		wantParent      string
		wantSuggestions []string
	}{
		{name: "empty path", path: nil},
		{name: "known command", path: []string{"log"}},
		{name: "trailing flag and value", path: []string{"log", "-r", "@"}},
		{name: "trailing positional on runnable command", path: []string{"log", "extra"}},
		{name: "double dash", path: []string{"log", "--", "-r"}},
		{name: "nested command", path: []string{"bookmark", "list"}},
		{name: "command alias", path: []string{"b", "l"}},
		{name: "group followed by a flag value", path: []string{"bookmark", "--color", "never"}},
		{name: "group followed by a double dash", path: []string{"bookmark", "--", "anything"}},
		{name: "switch between group and subcommand", path: []string{"bookmark", "--no-pager", "list"}},
		{name: "unknown short flag before a subcommand", path: []string{"bookmark", "-x", "list"}},
		{name: "unknown long flag before a subcommand", path: []string{"bookmark", "--bogus", "list"}},
		{name: "positional after a runnable subcommand", path: []string{"bookmark", "list", "extra"}},
		{
			name:       "unknown top-level command",
			path:       []string{"frobnicate"},
			wantName:   "frobnicate",
			wantParent: "trove",
		},
		{
			name:            "misspelled subcommand",
			path:            []string{"bookmark", "lst"},
			wantName:        "lst",
			wantParent:      "trove bookmark",
			wantSuggestions: []string{"list"},
		},
		{
			name:            "misspelled top-level command",
			path:            []string{"lgo"},
			wantName:        "lgo",
			wantParent:      "trove",
			wantSuggestions: []string{"log"},
		},
		{
			name:            "misspelled subcommand after an unknown flag",
			path:            []string{"b", "-x", "lst"},
			wantName:        "lst",
			wantParent:      "trove bookmark",
			wantSuggestions: []string{"list"},
		},
		{
			name:       "unknown subcommand after a switch",
			path:       []string{"bookmark", "--no-pager", "frobnicate"},
			wantName:   "frobnicate",
			wantParent: "trove bookmark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry(newTestTree())

			err := registry.Validate(tt.path)

			if tt.wantName == "" {
				if err != nil {
					t.Fatalf("Validate(%q) unexpected error = %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, command.ErrInvalidSubcommand) {
				t.Fatalf("Validate(%q) error = %v, want %v", tt.path, err, command.ErrInvalidSubcommand)
			}
			var invalid *command.InvalidSubcommandError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate(%q) error = %T, want *command.InvalidSubcommandError", tt.path, err)
			}
			if invalid.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", invalid.Name, tt.wantName)
			}
			if invalid.Parent != tt.wantParent {
				t.Errorf("Parent = %q, want %q", invalid.Parent, tt.wantParent)
			}
			if tt.wantSuggestions != nil && !reflect.DeepEqual(invalid.Suggestions, tt.wantSuggestions) {
				t.Errorf("Suggestions = %v, want %v", invalid.Suggestions, tt.wantSuggestions)
			}
		})
	}
}

func TestRegistry_RootIsMatchable(t *testing.T) {
	registry := NewRegistry(newTestTree())

	tests := []struct {
		name      string
		tokens    []string
		wantName  string
		wantDepth int
	}{
		{name: "root", tokens: nil, wantName: "trove", wantDepth: 0},
		{name: "by name", tokens: []string{"bookmark", "list"}, wantName: "list", wantDepth: 2},
		{name: "by alias", tokens: []string{"b", "l"}, wantName: "list", wantDepth: 2},
		{name: "stops at flag", tokens: []string{"log", "-r", "@"}, wantName: "log", wantDepth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, depth := commandpath.Match(registry.Root(), tt.tokens)
			if node.Name() != tt.wantName || depth != tt.wantDepth {
				t.Errorf("Match(%q) = (%q, %d), want (%q, %d)", tt.tokens, node.Name(), depth, tt.wantName, tt.wantDepth)
			}
		})
	}
}

func TestNode_LongHelp(t *testing.T) {
	registry := NewRegistry(newTestTree())
	logNode, ok := registry.Root().Child("log")
	if !ok {
		t.Fatal("Child(\"log\") not found")
	}

	help := logNode.LongHelp()

	for _, want := range []string{"Show revision history", "Usage:", "trove log", "--revisions", "--color"} {
		if !strings.Contains(help, want) {
			t.Errorf("LongHelp() missing %q:\n%s", want, help)
		}
	}
	// Rendering help twice must give the same text.
	if again := logNode.LongHelp(); again != help {
		t.Errorf("LongHelp() is not repeatable:\n%s\n---\n%s", help, again)
	}
}

func TestNode_ChildMissing(t *testing.T) {
	registry := NewRegistry(newTestTree())
	if _, ok := registry.Root().Child("frobnicate"); ok {
		t.Errorf("Child(\"frobnicate\") found a command")
	}
}
