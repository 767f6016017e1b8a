package helprendering

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/trove/internal/core/domain/alias"
	"github.com/AntonioJCosta/trove/internal/core/domain/keyword"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/AntonioJCosta/trove/internal/core/services/commandpath"
	"github.com/sirupsen/logrus"
)

// Options tunes how help is rendered.
type Options struct {
	// RenderMarkdown renders keyword documents for the terminal instead of
	// printing the markdown source. It only applies when color is enabled.
	RenderMarkdown bool
	// MarkdownWidth is the line width used when rendering markdown.
	MarkdownWidth int
}

type service struct {
	aliases  ports.AliasResolutionService
	registry ports.CommandRegistry
	keywords ports.KeywordRegistry
	opts     Options
}

// NewService creates a new help service.
// It panics if any collaborator is nil.
func NewService(
	aliases ports.AliasResolutionService,
	registry ports.CommandRegistry,
	keywords ports.KeywordRegistry,
	opts Options,
) ports.HelpService {
	if aliases == nil {
		panic("alias resolution service cannot be nil")
	}
	if registry == nil {
		panic("command registry cannot be nil")
	}
	if keywords == nil {
		panic("keyword registry cannot be nil")
	}
	if opts.MarkdownWidth <= 0 {
		opts.MarkdownWidth = defaultMarkdownWidth
	}
	return &service{
		aliases:  aliases,
		registry: registry,
		keywords: keywords,
		opts:     opts,
	}
}

// ShowKeyword writes the document registered for name.
func (s *service) ShowKeyword(out ports.Output, name string) error {
	kw, ok := s.keywords.Lookup(name)
	if !ok {
		return &keyword.NotFoundError{Name: name, Available: keywordNames(s.keywords)}
	}

	content := kw.Content
	if s.opts.RenderMarkdown && out.ColorEnabled() {
		content = renderMarkdown(content, s.opts.MarkdownWidth)
	}

	out.RequestPager()
	if _, err := io.WriteString(out.Stdout(), content); err != nil {
		return writeError("keyword help", err)
	}
	return nil
}

// ShowCommand writes the help for the command named by tokens, expanding a
// leading alias first.
func (s *service) ShowCommand(out ports.Output, tokens []string) error {
	path := tokens
	var banner []string

	if len(tokens) > 0 {
		res, isAlias, err := s.aliases.Resolve(tokens[0])
		if err != nil {
			return err
		}
		if isAlias {
			if len(tokens) > 1 {
				return &alias.ExtraneousArgumentsError{Alias: tokens[0], Extra: tokens[1:]}
			}
			banner = res.Original
			if banner == nil {
				banner = []string{}
			}
			path = res.Expanded
		}
	}

	if err := s.registry.Validate(path); err != nil {
		return err
	}

	node, depth := commandpath.Match(s.registry.Root(), path)
	logrus.WithFields(logrus.Fields{
		"path":    path,
		"depth":   depth,
		"command": node.Name(),
	}).Debug("matched help target")

	helpText := node.LongHelp()
	if out.ColorEnabled() {
		helpText = newHelpStyler(true).Style(helpText)
	}

	out.RequestPager()
	w := out.Stdout()
	if banner != nil {
		if _, err := fmt.Fprintf(w, "%s\n\n", formatAliasDefinition(banner)); err != nil {
			return writeError("alias banner", err)
		}
	}
	if _, err := io.WriteString(w, helpText); err != nil {
		return writeError("help", err)
	}
	return nil
}
