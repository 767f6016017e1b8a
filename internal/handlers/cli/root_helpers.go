package cli

import (
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	color   string
	noPager bool
	debug   bool
}

func parseGlobalFlags(cmd *cobra.Command) globalFlags {
	colorMode, _ := cmd.Flags().GetString("color")
	noPager, _ := cmd.Flags().GetBool("no-pager")
	debug, _ := cmd.Flags().GetBool("debug")
	return globalFlags{color: colorMode, noPager: noPager, debug: debug}
}

/*
withOutput opens the output for one invocation, runs fn and closes the
output afterwards. The ui palette follows the output's color decision.
An error from fn takes precedence over an error from Close.
*/
func withOutput(cmd *cobra.Command, outputs ports.OutputFactory, fn func(out ports.Output) error) (err error) {
	flags := parseGlobalFlags(cmd)
	out, err := outputs.NewOutput(ports.OutputOptions{Color: flags.color, NoPager: flags.noPager})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	color.NoColor = !out.ColorEnabled()
	return fn(out)
}
