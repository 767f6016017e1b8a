/*
Package cobraregistry exposes a cobra command tree to the help engine.
*/
package cobraregistry

import (
	"bytes"
	"strings"

	"github.com/AntonioJCosta/trove/internal/core/domain/command"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Registry implements ports.CommandRegistry on top of a cobra root command.
type Registry struct {
	root *cobra.Command
}

// NewRegistry creates a registry for the tree rooted at root.
// It panics if root is nil.
func NewRegistry(root *cobra.Command) ports.CommandRegistry {
	if root == nil {
		panic("root command cannot be nil")
	}
	return &Registry{root: root}
}

func (r *Registry) Root() ports.CommandNode {
	return node{cmd: r.root}
}

// suggestionDistance is the edit distance cobra itself uses for root
// command suggestions. Commands other than the root start at zero.
const suggestionDistance = 2

/*
Validate walks path through the tree and rejects the first operand that is
not a subcommand of a command that only groups subcommands. Flags and their
values are skipped, unknown flags are treated as switches, and everything
after "--" is accepted.
*/
func (r *Registry) Validate(path []string) error {
	cmd := r.root
	for i := 0; i < len(path); i++ {
		arg := path[i]
		switch {
		case arg == "--":
			return nil
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if !strings.Contains(name, "=") && takesValue(lookupFlag(cmd, name)) {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// Only a lone "-x" can be followed by a separate value.
			if len(arg) == 2 && takesValue(lookupShorthand(cmd, arg[1:])) {
				i++
			}
		default:
			if sub := findChild(cmd, arg); sub != nil {
				cmd = sub
				continue
			}
			if !cmd.HasAvailableSubCommands() || cmd.Runnable() {
				return nil
			}
			return &command.InvalidSubcommandError{
				Name:        arg,
				Parent:      cmd.CommandPath(),
				Suggestions: suggestionsFor(cmd, arg),
			}
		}
	}
	return nil
}

func findChild(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}

func suggestionsFor(cmd *cobra.Command, typed string) []string {
	if cmd.SuggestionsMinimumDistance <= 0 {
		cmd.SuggestionsMinimumDistance = suggestionDistance
	}
	return cmd.SuggestionsFor(typed)
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, shorthand string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(shorthand); f != nil {
		return f
	}
	return cmd.InheritedFlags().ShorthandLookup(shorthand)
}

// takesValue reports whether f consumes the following argument. Unknown
// flags are treated as switches.
func takesValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal == ""
}

type node struct {
	cmd *cobra.Command
}

func (n node) Name() string {
	return n.cmd.Name()
}

// Child matches subcommand names and their cobra aliases.
func (n node) Child(name string) (ports.CommandNode, bool) {
	if sub := findChild(n.cmd, name); sub != nil {
		return node{cmd: sub}, true
	}
	return nil, false
}

// LongHelp renders the command's help template into a string.
func (n node) LongHelp() string {
	var buf bytes.Buffer
	n.cmd.SetOut(&buf)
	defer n.cmd.SetOut(nil)
	if err := n.cmd.Help(); err != nil {
		return ""
	}
	return buf.String()
}
