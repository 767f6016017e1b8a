package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

const defaultPager = "less -FRX"

// pagerCommand picks the configured pager, then $PAGER, then less.
func pagerCommand(configured string) ([]string, error) {
	command := configured
	if command == "" {
		command = os.Getenv("PAGER")
	}
	if command == "" {
		command = defaultPager
	}

	argv, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("invalid pager command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("pager command is empty")
	}
	return argv, nil
}

type execPager struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func startPager(argv []string, out io.Writer) (pagerProcess, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if _, ok := os.LookupEnv("LESSCHARSET"); !ok {
		cmd.Env = append(cmd.Env, "LESSCHARSET=utf-8")
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execPager{cmd: cmd, stdin: stdin}, nil
}

func (p *execPager) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close ends the pager's input and waits for it to exit. The process is
// always reaped, even when closing its input fails.
func (p *execPager) Close() error {
	closeErr := p.stdin.Close()
	return errors.Join(closeErr, p.cmd.Wait())
}
