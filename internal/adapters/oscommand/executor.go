package oscommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/trove/internal/core/domain/process"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// OSCommandExecutor implements the CommandExecutor interface by running programs directly, without a shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs name with args and returns its stdout and stderr.
// A program missing from PATH yields process.ErrExecutableNotFound and an
// unsuccessful exit yields a *process.ExitError carrying the trimmed stderr.
func (e *OSCommandExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	logrus.WithFields(logrus.Fields{"program": name, "args": args}).Debug("running external command")

	err := cmd.Run()
	stdout, stderr := outBuf.Bytes(), errBuf.Bytes()
	if err == nil {
		return stdout, stderr, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return nil, nil, fmt.Errorf("running %s: %w", name, process.ErrExecutableNotFound)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout, stderr, &process.ExitError{
			Name:     name,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(string(stderr)),
		}
	}
	return stdout, stderr, fmt.Errorf("running %s: %w", name, err)
}
