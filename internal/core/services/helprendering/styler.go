package helprendering

import (
	"strings"

	"github.com/fatih/color"
)

// helpStyler adds terminal styling to plain help text. Section headings
// ("Usage:", "Flags:") are underlined and the first column of indented
// entries (subcommand names and flags) is highlighted.
type helpStyler struct {
	heading *color.Color
	literal *color.Color
}

// newHelpStyler creates a styler. When enabled is false the styler returns
// text unchanged, regardless of the global color settings.
func newHelpStyler(enabled bool) *helpStyler {
	s := &helpStyler{
		heading: color.New(color.Bold, color.Underline),
		literal: color.New(color.Bold),
	}
	if enabled {
		s.heading.EnableColor()
		s.literal.EnableColor()
	} else {
		s.heading.DisableColor()
		s.literal.DisableColor()
	}
	return s
}

// Style styles every line of text.
func (s *helpStyler) Style(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		lines[i] = s.styleLine(line, next)
	}
	return strings.Join(lines, "\n")
}

func (s *helpStyler) styleLine(line, next string) string {
	trimmed := strings.TrimRight(line, " ")
	if trimmed == "" {
		return line
	}

	// Sections are always followed by indented entries. Prose that happens
	// to end in a colon is not.
	if isHeading(trimmed) && strings.HasPrefix(next, "  ") {
		return s.heading.Sprint(trimmed)
	}

	if strings.HasPrefix(line, "  ") {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		rest := line[indent:]
		// Entries are "<name>   <description>"; the first column ends at the
		// first run of two spaces.
		end := strings.Index(rest, "  ")
		if end < 0 {
			end = len(rest)
		}
		if end == 0 {
			return line
		}
		return line[:indent] + s.literal.Sprint(rest[:end]) + rest[end:]
	}
	return line
}

// isHeading matches unindented lines such as "Available Commands:".
func isHeading(line string) bool {
	if strings.HasPrefix(line, " ") || !strings.HasSuffix(line, ":") {
		return false
	}
	return !strings.Contains(strings.TrimSuffix(line, ":"), ":")
}
