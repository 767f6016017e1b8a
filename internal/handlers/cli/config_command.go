package cli

import (
	"fmt"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/AntonioJCosta/trove/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the 'config' command group.
func NewConfigCommand(sources ports.ConfigSourceProvider, outputs ports.OutputFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config files that are read, in order of precedence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutput(cmd, outputs, func(out ports.Output) error {
				return runConfigPathCmd(out, sources)
			})
		},
	})
	return cmd
}

func runConfigPathCmd(out ports.Output, sources ports.ConfigSourceProvider) error {
	w := out.Stdout()
	all := sources.Sources()
	if len(all) == 0 {
		fmt.Fprintln(w, ui.InfoColor("No config files are considered."))
		return nil
	}
	for _, s := range all {
		state := ui.WarningColor("not found")
		if s.Exists {
			state = ui.SuccessColor("loaded")
		}
		fmt.Fprintf(w, "%s %s %s\n", s.Path, ui.DetailColor("("+s.Scope+")"), state)
	}
	return nil
}
