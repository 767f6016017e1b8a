package helprendering

import (
	"strings"
	"testing"
)

const sampleHelp = `Show revision history

Usage:
  trove log [flags]

Flags:
  -h, --help           help for log
  -r, --revisions      Which revisions to show
`

func TestHelpStyler_Disabled(t *testing.T) {
	if got := newHelpStyler(false).Style(sampleHelp); got != sampleHelp {
		t.Errorf("disabled styler changed the text:\n%s", got)
	}
}

func TestHelpStyler_Enabled(t *testing.T) {
	got := newHelpStyler(true).Style(sampleHelp)

	if !strings.Contains(got, "\x1b[1;4mUsage:") {
		t.Errorf("heading not styled: %q", got)
	}
	if !strings.Contains(got, "\x1b[1m-h, --help") {
		t.Errorf("flag column not styled: %q", got)
	}
	if !strings.Contains(got, "help for log") {
		t.Errorf("description lost: %q", got)
	}
	if !strings.HasPrefix(got, "Show revision history\n") {
		t.Errorf("prose line should be unchanged: %q", got)
	}
}

func TestHelpStyler_ProseEndingInColon(t *testing.T) {
	text := "Generates a link for the following revision:\n\nUsage:\n  trove github link [flags]\n"

	got := newHelpStyler(true).Style(text)

	if !strings.HasPrefix(got, "Generates a link for the following revision:\n") {
		t.Errorf("prose line was styled: %q", got)
	}
	if !strings.Contains(got, "\x1b[1;4mUsage:") {
		t.Errorf("heading not styled: %q", got)
	}
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Usage:", true},
		{"Available Commands:", true},
		{"  -h, --help:", false},
		{"See https://example.com:", false},
		{"Plain sentence.", false},
	}
	for _, tt := range tests {
		if got := isHeading(tt.line); got != tt.want {
			t.Errorf("isHeading(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
