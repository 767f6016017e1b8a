package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/spf13/cobra"
)

type helpCommandFlags struct {
	keyword    string
	keywordSet bool
}

func parseHelpCommandFlags(cmd *cobra.Command) helpCommandFlags {
	keyword, _ := cmd.Flags().GetString("keyword")
	return helpCommandFlags{
		keyword:    keyword,
		keywordSet: cmd.Flags().Changed("keyword"),
	}
}

// validateHelpArgs rejects a keyword together with commands and keywords
// that do not exist, before any output is opened.
func validateHelpArgs(flags helpCommandFlags, args []string, keywords ports.KeywordRegistry) error {
	if !flags.keywordSet {
		return nil
	}
	if len(args) > 0 {
		return &usageError{
			msg:  "the argument '--keyword <KEYWORD>' cannot be used with '[COMMAND]...'",
			hint: "Use either 'trove help -k <KEYWORD>' or 'trove help <COMMAND>...'",
		}
	}
	if _, ok := keywords.Lookup(flags.keyword); !ok {
		return &usageError{
			msg:  fmt.Sprintf("invalid value '%s' for '--keyword <KEYWORD>'", flags.keyword),
			hint: "possible values: " + strings.Join(keywordCompletions(keywords), ", "),
		}
	}
	return nil
}

func helpCommandLong(keywords ports.KeywordRegistry) string {
	var b strings.Builder
	b.WriteString("Print this message or the help of the given subcommand(s).\n\n")
	b.WriteString("When the first argument is an alias, the help of the command it\n")
	b.WriteString("expands to is shown after the alias definition.")
	if keywords == nil {
		return b.String()
	}

	all := keywords.Keywords()
	width := 0
	for _, k := range all {
		width = max(width, len(k.Name))
	}
	b.WriteString("\n\nKeywords:\n")
	for _, k := range all {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, k.Name, k.Description)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func keywordCompletions(keywords ports.KeywordRegistry) []string {
	all := keywords.Keywords()
	names := make([]string, len(all))
	for i, k := range all {
		names[i] = k.Name
	}
	return names
}

// subcommandNames lists the available children of the command named by path.
func subcommandNames(root *cobra.Command, path []string) []string {
	cmd, _, err := root.Find(path)
	if err != nil || cmd == nil {
		return nil
	}
	var names []string
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			names = append(names, sub.Name())
		}
	}
	return names
}
