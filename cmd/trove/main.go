package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AntonioJCosta/trove/internal/adapters/cobraregistry"
	"github.com/AntonioJCosta/trove/internal/adapters/defaultaliases"
	"github.com/AntonioJCosta/trove/internal/adapters/keywords"
	"github.com/AntonioJCosta/trove/internal/adapters/oscommand"
	"github.com/AntonioJCosta/trove/internal/adapters/terminal"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/AntonioJCosta/trove/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/trove/internal/core/services/githublink"
	"github.com/AntonioJCosta/trove/internal/core/services/helprendering"
	"github.com/AntonioJCosta/trove/internal/handlers/cli"
	"github.com/AntonioJCosta/trove/internal/logging"
	"github.com/AntonioJCosta/trove/internal/repositories/userconfig"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

func main() {
	if err := logging.Setup("", os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	wd, err := os.Getwd()
	if err != nil {
		cli.PrintError(os.Stderr, fmt.Errorf("failed to get working directory: %w", err))
		os.Exit(1)
	}
	cfg, err := userconfig.Load(wd)
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	// Configured aliases override the built-in ones by name.
	aliasSvc := aliasresolution.NewService(defaultaliases.NewYAMLProvider(), cfg)
	keywordRegistry := keywords.NewRegistry()
	linkSvc := githublink.NewService(oscommand.NewOSCommandExecutor())
	outputs := terminal.NewFactory(terminal.Settings{
		Color:    cfg.UI.Color,
		Paginate: cfg.UI.Paginate,
		Pager:    cfg.UI.Pager,
	})
	helpOpts := helprendering.Options{RenderMarkdown: cfg.Help.RenderMarkdown}

	rootCmd := cli.NewRootCommand(Version, cli.Services{
		Aliases:       aliasSvc,
		Keywords:      keywordRegistry,
		Outputs:       outputs,
		Links:         linkSvc,
		ConfigSources: cfg,
		NewHelpService: func(root *cobra.Command) ports.HelpService {
			return helprendering.NewService(aliasSvc, cobraregistry.NewRegistry(root), keywordRegistry, helpOpts)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
