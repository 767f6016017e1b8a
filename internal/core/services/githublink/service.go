package githublink

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AntonioJCosta/trove/internal/core/domain/process"
	"github.com/AntonioJCosta/trove/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// DefaultRevision is linked when no revision is given.
const DefaultRevision = "HEAD"

type service struct {
	executor ports.CommandExecutor
}

// NewService creates a new link service.
// It panics if executor is nil.
func NewService(executor ports.CommandExecutor) ports.LinkService {
	if executor == nil {
		panic("command executor cannot be nil")
	}
	return &service{executor: executor}
}

// Link resolves revision with git and asks gh for the commit's web URL.
func (s *service) Link(ctx context.Context, revision string) (string, error) {
	if revision == "" {
		revision = DefaultRevision
	}

	commit, err := s.resolveCommit(ctx, revision)
	if err != nil {
		return "", err
	}

	log := logrus.WithFields(logrus.Fields{"revision": revision, "commit": commit})
	log.Debug("running gh command")
	stdout, _, err := s.executor.Execute(ctx, "gh", "browse", "--no-browser", commit)
	if err != nil {
		log.WithError(err).Debug("gh command failed")
		return "", ghError(err)
	}
	if !utf8.Valid(stdout) {
		return "", ErrBadResult
	}
	return strings.TrimRightFunc(string(stdout), unicode.IsSpace), nil
}

func (s *service) resolveCommit(ctx context.Context, revision string) (string, error) {
	// git would read a leading dash as an option.
	if strings.HasPrefix(revision, "-") {
		return "", &RevisionNotFoundError{Revision: revision}
	}

	stdout, _, err := s.executor.Execute(ctx, "git", "rev-parse", "--verify", "--quiet", revision+"^{commit}")
	if err != nil {
		var exitErr *process.ExitError
		if errors.As(err, &exitErr) {
			return "", &RevisionNotFoundError{Revision: revision}
		}
		return "", fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	commit := strings.TrimSpace(string(stdout))
	if commit == "" {
		return "", &RevisionNotFoundError{Revision: revision}
	}
	return commit, nil
}

func ghError(err error) error {
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{ExitCode: exitErr.ExitCode, Stderr: exitErr.Stderr}
	}
	return &NotInstalledError{Err: err}
}
