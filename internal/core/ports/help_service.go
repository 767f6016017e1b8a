package ports

// HelpService defines the contract for the help command.
type HelpService interface {
	// ShowKeyword writes the documentation for the named keyword.
	ShowKeyword(out Output, name string) error

	// ShowCommand writes the help for the command named by tokens. The first
	// token may be an alias, in which case a banner describing it precedes
	// the help. Nothing is written when an error is returned.
	ShowCommand(out Output, tokens []string) error
}
