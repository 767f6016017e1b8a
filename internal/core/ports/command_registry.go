package ports

/*
CommandNode is a read-only view of one command in the command tree owned by
the argument parser.
*/
type CommandNode interface {
	Name() string
	// Child returns the direct subcommand called name, if any.
	Child(name string) (CommandNode, bool)
	// LongHelp returns the complete help text for this command.
	LongHelp() string
}

/*
CommandRegistry exposes the command tree to the help engine.
*/
type CommandRegistry interface {
	Root() CommandNode

	/*
	   Validate checks that path does not name an unknown subcommand at a
	   position where a subcommand is required. Trailing flags and positional
	   values are accepted. It returns a *command.InvalidSubcommandError on
	   failure.
	*/
	Validate(path []string) error
}
