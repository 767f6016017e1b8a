package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		env       string
		wantLevel logrus.Level
		wantErr   bool
	}{
		{name: "default", wantLevel: logrus.WarnLevel},
		{name: "explicit level", level: "debug", wantLevel: logrus.DebugLevel},
		{name: "environment", env: "info", wantLevel: logrus.InfoLevel},
		{name: "explicit beats environment", level: "error", env: "trace", wantLevel: logrus.ErrorLevel},
		{name: "invalid level", level: "loud", wantErr: true},
	}

	original := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetLevel(original)
		logrus.SetOutput(io.Discard)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLevel, tt.env)
			logrus.SetLevel(logrus.PanicLevel)

			err := Setup(tt.level, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Setup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logrus.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logrus.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestSetup_WritesToGivenWriter(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(io.Discard) })
	var buf bytes.Buffer

	if err := Setup("debug", &buf); err != nil {
		t.Fatalf("Setup() unexpected error = %v", err)
	}
	logrus.WithField("alias", "l").Debug("resolved alias")

	got := buf.String()
	if !strings.Contains(got, "resolved alias") || !strings.Contains(got, "alias=l") {
		t.Errorf("log output = %q", got)
	}
}
