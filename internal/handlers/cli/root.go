package cli

import (
	"fmt"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Services holds the collaborators the commands are built from.
type Services struct {
	Aliases       ports.AliasResolutionService
	Keywords      ports.KeywordRegistry
	Outputs       ports.OutputFactory
	Links         ports.LinkService
	ConfigSources ports.ConfigSourceProvider

	// NewHelpService builds the help service once the command tree exists.
	NewHelpService func(root *cobra.Command) ports.HelpService
}

const keywordHint = `'trove help --help' lists available keywords. Use 'trove help -k' to show help for one of these keywords.`

func NewRootCommand(version string, services Services) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trove",
		Short: "trove is a version control tool with alias-aware help.",
		Long: `trove is a version control tool.

Run 'trove help <command>' for the help of a command or of a configured alias.

` + keywordHint,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if parseGlobalFlags(cmd).debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return checkServices(cmd, services)
		},
	}

	rootCmd.PersistentFlags().String("color", "", "When to colorize output (always, never, auto)")
	rootCmd.PersistentFlags().Bool("no-pager", false, "Disable the pager")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"always", "never", "auto"}, cobra.ShellCompDirectiveNoFileComp,
	))

	rootCmd.AddCommand(NewAliasCommand(services.Aliases, services.Outputs))
	rootCmd.AddCommand(NewGithubCommand(services.Links, services.Outputs))
	rootCmd.AddCommand(NewConfigCommand(services.ConfigSources, services.Outputs))
	rootCmd.AddCommand(NewVersionCommand(version))
	rootCmd.SetHelpCommand(NewHelpCommand(services.NewHelpService, services.Keywords, services.Outputs))

	return rootCmd
}

// checkServices rejects commands whose collaborators were not provided.
func checkServices(cmd *cobra.Command, services Services) error {
	if services.Outputs == nil {
		return fmt.Errorf("output factory not initialized for command %s", cmd.Name())
	}
	switch cmd.Name() {
	case "help":
		if services.NewHelpService == nil || services.Keywords == nil {
			return fmt.Errorf("help service not initialized for command %s", cmd.Name())
		}
	case "list", "show":
		if services.Aliases == nil {
			return fmt.Errorf("alias service not initialized for command %s", cmd.Name())
		}
	case "link":
		if services.Links == nil {
			return fmt.Errorf("link service not initialized for command %s", cmd.Name())
		}
	case "path":
		if services.ConfigSources == nil {
			return fmt.Errorf("config sources not initialized for command %s", cmd.Name())
		}
	}
	return nil
}
