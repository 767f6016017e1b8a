/*
Package logging configures the process-wide logrus logger. Diagnostic
events go to stderr and never mix with command output.
*/
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "TROVE_LOG"

const defaultLevel = logrus.WarnLevel

// Setup configures the standard logger. An empty level falls back to
// $TROVE_LOG and then to "warn".
func Setup(level string, w io.Writer) error {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}

	parsed := defaultLevel
	if level != "" {
		l, err := logrus.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		parsed = l
	}

	logger := logrus.StandardLogger()
	logger.SetOutput(w)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return nil
}
