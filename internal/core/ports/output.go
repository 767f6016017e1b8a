package ports

import "io"

/*
Output is the user-facing output stream for a single command invocation.
*/
type Output interface {
	// RequestPager asks for the following output to go through a pager.
	// It must be called before the first call to Stdout.
	RequestPager()
	Stdout() io.Writer
	ColorEnabled() bool
	// Close flushes the output and waits for the pager, if one was started.
	Close() error
}

// OutputOptions are the per-invocation settings taken from global flags.
type OutputOptions struct {
	Color   string // "auto", "always" or "never"; empty means configured default
	NoPager bool
}

// OutputFactory creates the Output for a command invocation.
type OutputFactory interface {
	NewOutput(opts OutputOptions) (Output, error)
}
