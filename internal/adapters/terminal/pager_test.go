package terminal

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
}

type failingCloser struct {
	bytes.Buffer
	err error
}

func (f *failingCloser) Close() error {
	return f.err
}

func TestExecPager_WritesThroughPager(t *testing.T) {
	requireShell(t)
	var out bytes.Buffer

	pager, err := startPager([]string{"sh", "-c", "cat"}, &out)
	if err != nil {
		t.Fatalf("startPager() error = %v", err)
	}
	if _, err := pager.Write([]byte("page one\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := pager.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := out.String(); got != "page one\n" {
		t.Errorf("pager output = %q, want %q", got, "page one\n")
	}
}

func TestExecPager_CloseWaitsWhenInputCloseFails(t *testing.T) {
	requireShell(t)
	cmd := exec.Command("sh", "-c", "exit 3")
	if err := cmd.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	closeErr := errors.New("close failed")
	pager := &execPager{cmd: cmd, stdin: &failingCloser{err: closeErr}}

	err := pager.Close()

	if !errors.Is(err, closeErr) {
		t.Errorf("Close() error = %v, want it to include %v", err, closeErr)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("Close() error = %v, want the pager's exit status 3", err)
	}
	if cmd.ProcessState == nil {
		t.Errorf("pager process was not waited for")
	}
}
