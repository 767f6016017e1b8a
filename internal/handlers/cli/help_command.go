package cli

import (
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewHelpCommand creates the 'help' command that replaces cobra's default.
func NewHelpCommand(
	newHelpService func(root *cobra.Command) ports.HelpService,
	keywords ports.KeywordRegistry,
	outputs ports.OutputFactory,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "help [COMMAND]...",
		Short: "Print this message or the help of the given subcommand(s)",
		Long:  helpCommandLong(keywords),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHelpCmd(cmd, args, newHelpService, keywords, outputs)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return subcommandNames(cmd.Root(), args), cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringP("keyword", "k", "", "Show help for keywords instead of commands")
	cmd.RegisterFlagCompletionFunc("keyword", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return keywordCompletions(keywords), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runHelpCmd(
	cmd *cobra.Command,
	args []string,
	newHelpService func(root *cobra.Command) ports.HelpService,
	keywords ports.KeywordRegistry,
	outputs ports.OutputFactory,
) error {
	flags := parseHelpCommandFlags(cmd)
	if err := validateHelpArgs(flags, args, keywords); err != nil {
		return err
	}

	helpService := newHelpService(cmd.Root())
	return withOutput(cmd, outputs, func(out ports.Output) error {
		if flags.keywordSet {
			return helpService.ShowKeyword(out, flags.keyword)
		}
		return helpService.ShowCommand(out, args)
	})
}
