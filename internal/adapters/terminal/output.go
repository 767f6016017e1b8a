/*
Package terminal implements the user-facing output stream: color detection
and the pager.
*/
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	PaginateAuto  = "auto"
	PaginateNever = "never"
)

// Settings are the configured defaults for every Output.
type Settings struct {
	Color    string
	Paginate string
	Pager    string
}

type pagerProcess interface {
	io.Writer
	Close() error
}

// Factory creates Outputs bound to the process's stdout.
type Factory struct {
	settings   Settings
	stdout     io.Writer
	isTerminal bool
	startPager func(argv []string, out io.Writer) (pagerProcess, error)
}

// NewFactory creates a factory writing to os.Stdout.
func NewFactory(settings Settings) ports.OutputFactory {
	return &Factory{
		settings:   settings,
		stdout:     os.Stdout,
		isTerminal: isTerminal(os.Stdout),
		startPager: startPager,
	}
}

// NewOutput resolves color and paging for one invocation. Options given on
// the command line take precedence over the configured settings.
func (f *Factory) NewOutput(opts ports.OutputOptions) (ports.Output, error) {
	mode := f.settings.Color
	if opts.Color != "" {
		mode = opts.Color
	}
	color, err := colorEnabled(mode, f.isTerminal)
	if err != nil {
		return nil, err
	}

	paginate := f.settings.Paginate
	switch paginate {
	case "", PaginateAuto, PaginateNever:
	default:
		return nil, fmt.Errorf("invalid ui.paginate value %q: expected %q or %q", paginate, PaginateAuto, PaginateNever)
	}

	ui := &UI{
		stdout:       f.stdout,
		color:        color,
		pagerAllowed: f.isTerminal && !opts.NoPager && paginate != PaginateNever,
		startPager:   f.startPager,
	}
	if ui.pagerAllowed {
		argv, err := pagerCommand(f.settings.Pager)
		if err != nil {
			return nil, err
		}
		ui.pagerArgv = argv
	}
	return ui, nil
}

// UI is the Output of a single command invocation.
type UI struct {
	stdout       io.Writer
	color        bool
	pagerAllowed bool
	pagerArgv    []string
	startPager   func(argv []string, out io.Writer) (pagerProcess, error)

	pagerRequested bool
	pager          pagerProcess
	writer         io.Writer
}

// RequestPager has no effect once Stdout has been called.
func (u *UI) RequestPager() {
	u.pagerRequested = true
}

// Stdout returns the stream to write to. The pager, when requested and
// allowed, is started on the first call.
func (u *UI) Stdout() io.Writer {
	if u.writer != nil {
		return u.writer
	}
	u.writer = u.stdout
	if !u.pagerRequested || !u.pagerAllowed {
		return u.writer
	}

	p, err := u.startPager(u.pagerArgv, u.stdout)
	if err != nil {
		logrus.WithError(err).WithField("pager", u.pagerArgv).Warn("failed to start pager, writing to stdout")
		return u.writer
	}
	u.pager = p
	u.writer = p
	return u.writer
}

func (u *UI) ColorEnabled() bool {
	return u.color
}

// Close waits for the pager to exit, if one was started.
func (u *UI) Close() error {
	if u.pager == nil {
		return nil
	}
	p := u.pager
	u.pager = nil
	if err := p.Close(); err != nil {
		return fmt.Errorf("pager %q failed: %w", u.pagerArgv[0], err)
	}
	return nil
}

func colorEnabled(mode string, terminal bool) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case "", ColorAuto:
		return terminal && !termenv.EnvNoColor() && os.Getenv("TERM") != "dumb", nil
	default:
		return false, fmt.Errorf("invalid color mode %q: expected %q, %q or %q", mode, ColorAuto, ColorAlways, ColorNever)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
