package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/AntonioJCosta/trove/internal/core/services/helprendering"
	"github.com/AntonioJCosta/trove/internal/handlers/ui"
	"github.com/kballard/go-shellquote"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAliasCommand creates the 'alias' command group.
func NewAliasCommand(aliases ports.AliasResolutionService, outputs ports.OutputFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Inspect configured aliases.",
		Long: `Aliases are defined in the [aliases] table of the config files.
Run 'trove help -k config' for details.`,
	}
	cmd.AddCommand(NewAliasListCommand(aliases, outputs))
	cmd.AddCommand(NewAliasShowCommand(aliases, outputs))
	return cmd
}

// NewAliasListCommand creates the 'alias list' subcommand.
func NewAliasListCommand(aliases ports.AliasResolutionService, outputs ports.OutputFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured aliases and what they expand to.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutput(cmd, outputs, func(out ports.Output) error {
				return runAliasListCmd(out, aliases)
			})
		},
	}
}

func runAliasListCmd(out ports.Output, aliases ports.AliasResolutionService) error {
	entries, err := aliases.List()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	w := out.Stdout()
	if len(entries) == 0 {
		fmt.Fprintln(w, ui.InfoColor("No aliases configured."))
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Definition", "Expands To"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		expansion := shellquote.Join(e.Expansion...)
		if e.Err != nil {
			expansion = ui.ErrorColor(e.Err.Error())
		}
		table.Append([]string{
			ui.AliasNameColor(e.Name),
			ui.AliasCmdColor(shellquote.Join(e.Definition...)),
			expansion,
		})
	}
	table.Render()
	return nil
}

// NewAliasShowCommand creates the 'alias show' subcommand.
func NewAliasShowCommand(aliases ports.AliasResolutionService, outputs ports.OutputFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the definition and full expansion of an alias.",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || aliases == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return aliasNames(aliases), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutput(cmd, outputs, func(out ports.Output) error {
				return runAliasShowCmd(out.Stdout(), args[0], aliases)
			})
		},
	}
}

func runAliasShowCmd(w io.Writer, name string, aliases ports.AliasResolutionService) error {
	res, ok, err := aliases.Resolve(name)
	if err != nil {
		return err
	}
	if !ok {
		return &usageError{
			msg:  fmt.Sprintf("no alias named %q", name),
			hint: "Run 'trove alias list' to see the configured aliases",
		}
	}

	fmt.Fprintln(w, helprendering.FormatAliasDefinition(res.Original))
	fmt.Fprintf(w, "%s %s\n", ui.DetailColor("Expands to:"), ui.AliasCmdColor(shellquote.Join(res.Expanded...)))
	return nil
}

func aliasNames(aliases ports.AliasResolutionService) []string {
	entries, err := aliases.List()
	if err != nil {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
