package cli

import (
	"fmt"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewGithubCommand creates the 'github' command group.
func NewGithubCommand(links ports.LinkService, outputs ports.OutputFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github",
		Short: "GitHub operations.",
	}
	cmd.AddCommand(NewGithubLinkCommand(links, outputs))
	return cmd
}

// NewGithubLinkCommand creates the 'github link' subcommand.
func NewGithubLinkCommand(links ports.LinkService, outputs ports.OutputFactory) *cobra.Command {
	var revision string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Generate a link to a commit in a GitHub repository.",
		Long: `Generates a GitHub link to the commit corresponding to the given revision.
The gh CLI must be installed and logged in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGithubLinkCmd(cmd, revision, links, outputs)
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "The revision to link to (default HEAD)")

	return cmd
}

func runGithubLinkCmd(cmd *cobra.Command, revision string, links ports.LinkService, outputs ports.OutputFactory) error {
	url, err := links.Link(cmd.Context(), revision)
	if err != nil {
		return err
	}
	return withOutput(cmd, outputs, func(out ports.Output) error {
		_, err := fmt.Fprintln(out.Stdout(), url)
		return err
	})
}
