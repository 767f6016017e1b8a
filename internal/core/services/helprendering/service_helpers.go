package helprendering

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/kballard/go-shellquote"
)

const defaultMarkdownWidth = 80

// FormatAliasDefinition renders the banner shown above the help of an alias.
func FormatAliasDefinition(definition []string) string {
	return formatAliasDefinition(definition)
}

// formatAliasDefinition quotes the definition the way a shell would accept
// it. Tokens containing NUL cannot be written as shell words, so those
// definitions are shown as a Go-quoted list instead.
func formatAliasDefinition(definition []string) string {
	for _, token := range definition {
		if strings.ContainsRune(token, 0) {
			return fmt.Sprintf("Alias for %q", definition)
		}
	}
	return fmt.Sprintf("Alias for \"%s\"", shellquote.Join(definition...))
}

// writeError wraps a failed write. A broken pipe means the pager was quit
// before it read everything, which is not a failure.
func writeError(what string, err error) error {
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

func keywordNames(registry ports.KeywordRegistry) []string {
	all := registry.Keywords()
	names := make([]string, len(all))
	for i, k := range all {
		names[i] = k.Name
	}
	return names
}

func renderMarkdown(source string, width int) string {
	return string(markdown.Render(source, width, 0))
}
